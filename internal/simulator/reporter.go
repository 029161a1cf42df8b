package simulator

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Report renders simulation results for the terminal, colouring RTP
// green above break-even and red below. Colour degrades with the
// terminal's capabilities via termenv.
func Report(results []*Result) string {
	profile := termenv.ColorProfile()

	var b strings.Builder
	fmt.Fprintf(&b, "%-14s %10s %12s %12s %8s %8s %8s %8s\n",
		"GAME", "ROUNDS", "WAGERED", "NET", "WINS", "PUSHES", "LOSSES", "RTP")
	for _, r := range results {
		rtp := fmt.Sprintf("%7.2f%%", r.RTP()*100)
		styled := termenv.String(rtp)
		if r.Net >= 0 {
			styled = styled.Foreground(profile.Color("10"))
		} else {
			styled = styled.Foreground(profile.Color("9"))
		}
		fmt.Fprintf(&b, "%-14s %10d %12d %+12d %8d %8d %8d %s\n",
			r.Game, r.Rounds, r.Wagered, r.Net, r.Wins, r.Pushes, r.Losses, styled)
	}
	return b.String()
}
