package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/san-kum/herofx/internal/config"
	"github.com/san-kum/herofx/internal/particles"
)

const (
	metaFile      = "metadata.json"
	particlesFile = "particles.csv"
	configFile    = "config.yaml"
	frameFile     = "frame.svg"
)

// Store keeps field snapshots, one directory per snapshot.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID        string    `json:"id"`
	Preset    string    `json:"preset,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Frame     int       `json:"frame"`
	Count     int       `json:"count"`
	Visible   int       `json:"visible"`
	Edges     int       `json:"edges"`
}

// ParticleRecord is one row of particles.csv.
type ParticleRecord struct {
	Index int     `csv:"index"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Z     float64 `csv:"z"`
	VX    float64 `csv:"vx"`
	VY    float64 `csv:"vy"`
	VZ    float64 `csv:"vz"`
}

// Snapshot is everything written for one saved frame.
type Snapshot struct {
	Meta      Metadata
	Config    *config.Config
	Particles []particles.Particle
	SVG       string
}

// Save writes snap under a new id and returns it.
func (s *Store) Save(snap Snapshot) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}
	id, dir, err := s.newDir(time.Now())
	if err != nil {
		return "", err
	}

	meta := snap.Meta
	meta.ID = id
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	meta.Count = len(snap.Particles)

	if err := writeJSON(filepath.Join(dir, metaFile), meta); err != nil {
		return "", fmt.Errorf("writing metadata: %w", err)
	}
	if err := writeParticles(filepath.Join(dir, particlesFile), snap.Particles); err != nil {
		return "", fmt.Errorf("writing particles: %w", err)
	}
	if snap.Config != nil {
		if err := config.Save(filepath.Join(dir, configFile), snap.Config); err != nil {
			return "", fmt.Errorf("writing config: %w", err)
		}
	}
	if snap.SVG != "" {
		if err := os.WriteFile(filepath.Join(dir, frameFile), []byte(snap.SVG), 0644); err != nil {
			return "", fmt.Errorf("writing frame: %w", err)
		}
	}

	slog.Info("snapshot saved", "id", id, "particles", meta.Count, "dir", dir)
	return id, nil
}

// newDir reserves a directory named after t, suffixed when taken.
func (s *Store) newDir(t time.Time) (string, string, error) {
	base := "snapshot_" + t.Format("20060102-150405")
	id := base
	for n := 2; ; n++ {
		dir := filepath.Join(s.baseDir, id)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return id, dir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeParticles(path string, ps []particles.Particle) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records := make([]ParticleRecord, len(ps))
	for i, p := range ps {
		records[i] = ParticleRecord{
			Index: i,
			X:     p.Pos.X,
			Y:     p.Pos.Y,
			Z:     p.Pos.Z,
			VX:    p.Vel.X,
			VY:    p.Vel.Y,
			VZ:    p.Vel.Z,
		}
	}
	return gocsv.Marshal(records, f)
}

// List returns every readable snapshot, oldest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	snaps := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			slog.Debug("skipping unreadable snapshot", "dir", entry.Name(), "error", err)
			continue
		}
		snaps = append(snaps, *meta)
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Timestamp.Before(snaps[j].Timestamp) })
	return snaps, nil
}

func (s *Store) Load(id string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metaFile))
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadConfig returns the config saved with a snapshot.
func (s *Store) LoadConfig(id string) (*config.Config, error) {
	return config.Load(filepath.Join(s.baseDir, id, configFile))
}

func (s *Store) LoadParticles(id string) ([]particles.Particle, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, particlesFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []ParticleRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("reading particles: %w", err)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Index < records[j].Index })
	ps := make([]particles.Particle, len(records))
	for i, r := range records {
		ps[i] = particles.Particle{
			Pos: particles.Vec3{X: r.X, Y: r.Y, Z: r.Z},
			Vel: particles.Vec3{X: r.VX, Y: r.VY, Z: r.VZ},
		}
	}
	return ps, nil
}

// FramePath is where a snapshot's SVG frame lives.
func (s *Store) FramePath(id string) string {
	return filepath.Join(s.baseDir, id, frameFile)
}
