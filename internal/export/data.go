package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/phaseplane/internal/eigen"
	"github.com/san-kum/phaseplane/internal/orbit"
)

// WriteTrajectoriesCSV writes all trajectories as rows of
// trajectory, step, x, y.
func WriteTrajectoriesCSV(w io.Writer, trajs []orbit.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"trajectory", "step", "x", "y"}); err != nil {
		return err
	}
	for _, t := range trajs {
		for i, p := range t.Points {
			row := []string{
				t.ID,
				strconv.Itoa(i),
				strconv.FormatFloat(p.X, 'f', 6, 64),
				strconv.FormatFloat(p.Y, 'f', 6, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteAnalysisJSON writes the equilibrium analysis as indented JSON.
func WriteAnalysisJSON(w io.Writer, a eigen.Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

// WriteTrajectoryJSON writes one trajectory as indented JSON.
func WriteTrajectoryJSON(w io.Writer, t orbit.Trajectory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}
