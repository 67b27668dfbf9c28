package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// basisTolerance is how far the configured basis may stray from orthonormal.
const basisTolerance = 1e-3

// WindowConfig sets up the window the triangle is drawn in.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

// TriangleConfig holds the shape parameters of the triangle at rest. When
// BaseOffset is set, it replaces BaseRadius, BaseUnitI and BaseUnitJ.
type TriangleConfig struct {
	Tip        [3]float32 `toml:"tip"`
	BaseMidpt  [3]float32 `toml:"base_midpt"`
	BaseRadius float32    `toml:"base_radius"`
	BaseUnitI  [3]float32 `toml:"base_unit_i"`
	BaseUnitJ  [3]float32 `toml:"base_unit_j"`
	// BaseOffset points from BaseMidpt to the clockwise base corner.
	BaseOffset *[3]float32 `toml:"base_offset"`
}

// Config holds everything the render loop can be tuned with.
type Config struct {
	Window WindowConfig `toml:"window"`
	// RevolutionsPerSecond is the spin rate of the triangle.
	RevolutionsPerSecond float32 `toml:"revolutions_per_second"`
	// Lit draws front and back faces with normals; otherwise only the
	// front face is drawn, unshaded.
	Lit        bool           `toml:"lit"`
	Background [4]float32     `toml:"background"`
	Triangle   TriangleConfig `toml:"triangle"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 1000,
			Title:  "Spinning Triangle",
			VSync:  true,
		},
		RevolutionsPerSecond: 0.125,
		Lit:                  true,
		Background:           [4]float32{1, 1, 1, 1},
		Triangle: TriangleConfig{
			Tip:        [3]float32{0.5, 0, 0},
			BaseMidpt:  [3]float32{0, 0, -0.5},
			BaseRadius: 0.5,
			BaseUnitI:  [3]float32{0, -1, 0},
			BaseUnitJ:  [3]float32{-0.707, 0, 0.707},
		},
	}
}

// LoadConfig reads a TOML file over the defaults. Keys missing from the file
// keep their default value; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("%s: %s", path, strict.String())
		}
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting the render loop cannot work with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	r := c.RevolutionsPerSecond
	if !finite(r) || r <= 0 {
		return fmt.Errorf("revolutions_per_second %v must be finite and positive", r)
	}
	return c.Triangle.Validate()
}

// Validate checks the shape parameters the Triangle methods assume.
func (tc TriangleConfig) Validate() error {
	if !finiteVec(tc.Tip) {
		return fmt.Errorf("tip %v must be finite", tc.Tip)
	}
	if !finiteVec(tc.BaseMidpt) {
		return fmt.Errorf("base_midpt %v must be finite", tc.BaseMidpt)
	}
	if tc.BaseOffset != nil {
		if !finiteVec(*tc.BaseOffset) {
			return fmt.Errorf("base_offset %v must be finite", *tc.BaseOffset)
		}
		_, err := tc.Shape()
		return err
	}

	if !finite(tc.BaseRadius) || tc.BaseRadius <= 0 {
		return fmt.Errorf("base_radius %v must be finite and positive", tc.BaseRadius)
	}
	i, j := mgl32.Vec3(tc.BaseUnitI), mgl32.Vec3(tc.BaseUnitJ)
	if !finiteVec(i) || !(math32.Abs(Length(i)-1) <= basisTolerance) {
		return fmt.Errorf("base_unit_i %v is not unit length", i)
	}
	if !finiteVec(j) || !(math32.Abs(Length(j)-1) <= basisTolerance) {
		return fmt.Errorf("base_unit_j %v is not unit length", j)
	}
	if !(math32.Abs(i.Dot(j)) <= basisTolerance) {
		return fmt.Errorf("base_unit_i %v and base_unit_j %v are not orthogonal", i, j)
	}
	return nil
}

// Shape returns the unrotated triangle described by tc.
func (tc TriangleConfig) Shape() (Triangle, error) {
	if tc.BaseOffset != nil {
		t, err := TriangleFromOffset(tc.Tip, tc.BaseMidpt, *tc.BaseOffset)
		if err != nil {
			return Triangle{}, fmt.Errorf("base_offset: %w", err)
		}
		return t, nil
	}
	return Triangle{
		Tip:        tc.Tip,
		BaseMidpt:  tc.BaseMidpt,
		BaseRadius: tc.BaseRadius,
		BaseUnitI:  tc.BaseUnitI,
		BaseUnitJ:  tc.BaseUnitJ,
	}, nil
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

func finiteVec(v [3]float32) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}
