// Package formats provides level file format parsers.
package formats

import (
	"fmt"

	platformcore "github.com/vovakirdan/parkjam/internal/core"
	"github.com/vovakirdan/parkjam/internal/games/parkjam/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID         int           `yaml:"id"`
	Name       string        `yaml:"name"`
	Difficulty string        `yaml:"difficulty"`
	Duration   float64       `yaml:"duration"`
	StartScore int           `yaml:"start_score"`
	Vehicles   []YAMLVehicle `yaml:"vehicles"`
}

// YAMLVehicle represents a single vehicle in YAML format.
// Vectors are written as [x, y, z] and the range as [min, max].
type YAMLVehicle struct {
	Pos      []float64 `yaml:"pos"`
	Size     []float64 `yaml:"size"`
	Color    string    `yaml:"color"`
	Vertical bool      `yaml:"vertical,omitempty"`
	Target   bool      `yaml:"target,omitempty"`
	Range    []float64 `yaml:"range"`
}

// ParseYAML parses a YAML level file. Vehicle IDs are assigned from list order.
// The result is not validated; see core.ValidateLevel.
func ParseYAML(data []byte) (core.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return core.Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := core.Level{
		ID:         yl.ID,
		Name:       yl.Name,
		Difficulty: yl.Difficulty,
		Duration:   yl.Duration,
		StartScore: yl.StartScore,
		Vehicles:   make([]core.Vehicle, 0, len(yl.Vehicles)),
	}
	if level.Name == "" {
		level.Name = fmt.Sprintf("Level %d", yl.ID)
	}

	for i, yv := range yl.Vehicles {
		v, err := yv.toVehicle(i)
		if err != nil {
			return core.Level{}, fmt.Errorf("vehicle %d: %w", i, err)
		}
		level.Vehicles = append(level.Vehicles, v)
	}

	return level, nil
}

func (yv YAMLVehicle) toVehicle(id int) (core.Vehicle, error) {
	pos, err := vec3(yv.Pos)
	if err != nil {
		return core.Vehicle{}, fmt.Errorf("pos: %w", err)
	}
	size, err := vec3(yv.Size)
	if err != nil {
		return core.Vehicle{}, fmt.Errorf("size: %w", err)
	}
	if len(yv.Range) != 2 {
		return core.Vehicle{}, fmt.Errorf("range: expected [min, max], got %d values", len(yv.Range))
	}

	color := platformcore.ColorWhite
	if yv.Color != "" {
		c, ok := platformcore.ParseColor(yv.Color)
		if !ok {
			return core.Vehicle{}, fmt.Errorf("unknown color %q", yv.Color)
		}
		color = c
	}

	return core.Vehicle{
		ID:       id,
		Position: pos,
		Size:     size,
		Color:    color,
		Vertical: yv.Vertical,
		Target:   yv.Target,
		MinPos:   yv.Range[0],
		MaxPos:   yv.Range[1],
	}, nil
}

func vec3(v []float64) (core.Vec3, error) {
	if len(v) != 3 {
		return core.Vec3{}, fmt.Errorf("expected [x, y, z], got %d values", len(v))
	}
	return core.V(v[0], v[1], v[2]), nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
