package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"cardhall/internal/slots"
)

// Config is the complete casino configuration.
type Config struct {
	Casino   *CasinoSettings `hcl:"casino,block"`
	Machines []MachineConfig `hcl:"machine,block"`
}

// CasinoSettings contains house-level configuration.
type CasinoSettings struct {
	StartingBalance int    `hcl:"starting_balance,optional"`
	DealerStands    int    `hcl:"dealer_stands,optional"`
	LogLevel        string `hcl:"log_level,optional"`
}

// MachineConfig defines one slot machine variant.
type MachineConfig struct {
	Name     string          `hcl:"name,label"`
	Rows     int             `hcl:"rows"`
	Cols     int             `hcl:"cols"`
	Wild     string          `hcl:"wild,optional"`
	Symbols  []SymbolConfig  `hcl:"symbol,block"`
	Paylines []PaylineConfig `hcl:"payline,block"`
}

// SymbolConfig defines one reel symbol and its three-of-a-kind payout.
type SymbolConfig struct {
	Glyph string `hcl:"glyph,label"`
	Pays  int    `hcl:"pays"`
}

// PaylineConfig defines one payline by row-major cell indices.
type PaylineConfig struct {
	Name  string `hcl:"name,label"`
	Cells []int  `hcl:"cells"`
}

// Default returns the house defaults: the original cabinet's starting
// balance, dealer standing on 17, and the two preset machines.
func Default() *Config {
	return &Config{
		Casino: &CasinoSettings{
			StartingBalance: 100000,
			DealerStands:    17,
			LogLevel:        "info",
		},
		Machines: []MachineConfig{
			fromMachine(slots.SimpleSlots()),
			fromMachine(slots.TripleLine()),
		},
	}
}

// Load reads casino configuration from an HCL file. A missing file
// yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	config := &Config{}
	diags = gohcl.DecodeBody(file.Body, nil, config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	// Anything the file leaves out falls back to the defaults; file
	// machines replace the presets wholesale.
	defaults := Default()
	if config.Casino == nil {
		config.Casino = defaults.Casino
	} else {
		if config.Casino.StartingBalance == 0 {
			config.Casino.StartingBalance = defaults.Casino.StartingBalance
		}
		if config.Casino.DealerStands == 0 {
			config.Casino.DealerStands = defaults.Casino.DealerStands
		}
		if config.Casino.LogLevel == "" {
			config.Casino.LogLevel = defaults.Casino.LogLevel
		}
	}
	if len(config.Machines) == 0 {
		config.Machines = defaults.Machines
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks settings and every machine definition.
func (c *Config) Validate() error {
	if c.Casino == nil {
		return fmt.Errorf("missing casino settings")
	}
	if c.Casino.StartingBalance <= 0 {
		return fmt.Errorf("starting_balance must be positive, got %d", c.Casino.StartingBalance)
	}
	if c.Casino.DealerStands < 2 || c.Casino.DealerStands > 21 {
		return fmt.Errorf("dealer_stands must be between 2 and 21, got %d", c.Casino.DealerStands)
	}
	names := make(map[string]bool)
	for _, mc := range c.Machines {
		if names[mc.Name] {
			return fmt.Errorf("duplicate machine %q", mc.Name)
		}
		names[mc.Name] = true
		if _, err := mc.Machine(); err != nil {
			return err
		}
	}
	return nil
}

// Machine converts the definition into a runnable slots.Machine.
func (mc MachineConfig) Machine() (*slots.Machine, error) {
	if mc.Rows <= 0 || mc.Cols <= 0 {
		return nil, fmt.Errorf("machine %q: window must be at least 1x1, got %dx%d", mc.Name, mc.Rows, mc.Cols)
	}
	if len(mc.Symbols) == 0 {
		return nil, fmt.Errorf("machine %q: no symbols defined", mc.Name)
	}
	if len(mc.Paylines) == 0 {
		return nil, fmt.Errorf("machine %q: no paylines defined", mc.Name)
	}

	m := &slots.Machine{
		Name:     mc.Name,
		Rows:     mc.Rows,
		Cols:     mc.Cols,
		Symbols:  make([]slots.Symbol, 0, len(mc.Symbols)),
		Paytable: make(slots.Paytable, len(mc.Symbols)),
		Wild:     slots.Symbol(mc.Wild),
		Paylines: make([]slots.Payline, 0, len(mc.Paylines)),
	}
	for _, sc := range mc.Symbols {
		sym := slots.Symbol(sc.Glyph)
		m.Symbols = append(m.Symbols, sym)
		m.Paytable[sym] = sc.Pays
	}
	if m.Wild != "" {
		if _, ok := m.Paytable[m.Wild]; !ok {
			return nil, fmt.Errorf("machine %q: wild %q is not a defined symbol", mc.Name, mc.Wild)
		}
	}

	cells := mc.Rows * mc.Cols
	for _, pc := range mc.Paylines {
		if len(pc.Cells) != 3 {
			return nil, fmt.Errorf("machine %q: payline %q needs exactly 3 cells, got %d", mc.Name, pc.Name, len(pc.Cells))
		}
		var line slots.Payline
		for i, cell := range pc.Cells {
			if cell < 0 || cell >= cells {
				return nil, fmt.Errorf("machine %q: payline %q cell %d out of range [0,%d)", mc.Name, pc.Name, cell, cells)
			}
			line[i] = cell
		}
		m.Paylines = append(m.Paylines, line)
	}
	return m, nil
}

// fromMachine converts a preset back into config form so defaults and
// file-loaded machines share one representation.
func fromMachine(m *slots.Machine) MachineConfig {
	mc := MachineConfig{
		Name: m.Name,
		Rows: m.Rows,
		Cols: m.Cols,
		Wild: string(m.Wild),
	}
	for _, sym := range m.Symbols {
		mc.Symbols = append(mc.Symbols, SymbolConfig{
			Glyph: string(sym),
			Pays:  m.Paytable.Payout(sym),
		})
	}
	for i, line := range m.Paylines {
		mc.Paylines = append(mc.Paylines, PaylineConfig{
			Name:  fmt.Sprintf("line-%d", i+1),
			Cells: []int{line[0], line[1], line[2]},
		})
	}
	return mc
}
