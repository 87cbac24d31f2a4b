// Package store persists portrait sessions under a data directory, one
// subdirectory per session holding metadata.json and trajectories.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/phaseplane/internal/eigen"
	"github.com/san-kum/phaseplane/internal/export"
	"github.com/san-kum/phaseplane/internal/orbit"
	"github.com/san-kum/phaseplane/internal/plane"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// SessionMeta describes one saved portrait.
type SessionMeta struct {
	ID             string     `json:"id"`
	Timestamp      time.Time  `json:"timestamp"`
	Matrix         plane.Mat2 `json:"matrix"`
	Steps          int        `json:"steps"`
	StepSize       float64    `json:"step_size"`
	Trajectories   int        `json:"trajectories"`
	Classification string     `json:"classification"`
	Stability      string     `json:"stability"`
}

// Save writes the portrait's metadata and trajectory samples and returns the
// session id.
func (s *Store) Save(p *orbit.Portrait, steps int, stepSize float64) (string, error) {
	id := fmt.Sprintf("session_%d", time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	a := p.Analysis()
	meta := SessionMeta{
		ID:             id,
		Timestamp:      time.Now(),
		Matrix:         p.Matrix(),
		Steps:          steps,
		StepSize:       stepSize,
		Trajectories:   len(p.Trajectories()),
		Classification: string(a.Class),
		Stability:      string(a.Stab),
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "trajectories.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := export.WriteTrajectoriesCSV(csvFile, p.Trajectories()); err != nil {
		return "", err
	}

	return id, nil
}

// List returns the metadata of every saved session, newest first.
func (s *Store) List() ([]SessionMeta, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMeta{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMeta, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta SessionMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		sessions = append(sessions, meta)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.After(sessions[j].Timestamp)
	})
	return sessions, nil
}

// Load reads one session back: its metadata, analysis recomputed from the
// stored matrix, and the trajectory samples.
func (s *Store) Load(id string) (SessionMeta, eigen.Analysis, []orbit.Trajectory, error) {
	var meta SessionMeta

	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return meta, eigen.Analysis{}, nil, fmt.Errorf("load session %s: %w", id, err)
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, eigen.Analysis{}, nil, fmt.Errorf("load session %s: %w", id, err)
	}

	f, err := os.Open(filepath.Join(s.baseDir, id, "trajectories.csv"))
	if err != nil {
		return meta, eigen.Analysis{}, nil, fmt.Errorf("load session %s: %w", id, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return meta, eigen.Analysis{}, nil, fmt.Errorf("load session %s: %w", id, err)
	}

	var trajs []orbit.Trajectory
	byID := map[string]int{}
	for i, row := range rows {
		if i == 0 || len(row) < 4 {
			continue
		}
		x, errX := strconv.ParseFloat(row[2], 64)
		y, errY := strconv.ParseFloat(row[3], 64)
		if errX != nil || errY != nil {
			continue
		}

		idx, ok := byID[row[0]]
		if !ok {
			idx = len(trajs)
			byID[row[0]] = idx
			trajs = append(trajs, orbit.Trajectory{ID: row[0]})
		}
		trajs[idx].Points = append(trajs[idx].Points, plane.Vec2{X: x, Y: y})
	}

	return meta, eigen.Classify(meta.Matrix), trajs, nil
}
