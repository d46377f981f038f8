package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plus3/tween/anim"
	"github.com/plus3/tween/config"
	"github.com/plus3/tween/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleConfig = `
log_level: debug
tick_rate: 30
curves:
  snappy: [0.1, 0.9, 0.2, 1.0]
animations:
  - name: fade
    kind: float
    from: 0
    to: 1
    duration: 0.5
    easing: snappy
  - name: slide
    kind: position
    from: [0, 0, 0]
    to: [10, 5, 0]
    repeat: ping-pong
    easing: ease-in-out
    auto_start: true
  - name: pulse
    kind: scale
    from: [1, 1, 1]
    to: [2, 2, 2]
    delay: 0.25
    repeat: loop
    easing: [0.3, 0.0, 0.7, 1.0]
`

func decode(t *testing.T, doc string) *config.File {
	t.Helper()
	file, err := config.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	return file
}

func TestDecode(t *testing.T) {
	file := decode(t, sampleConfig)

	assert.Equal(t, "debug", file.LogLevel)
	assert.Equal(t, 30, file.Rate())
	require.Contains(t, file.Curves, "snappy")
	assert.Equal(t, [4]float64{0.1, 0.9, 0.2, 1.0}, file.Curves["snappy"].Handles())
	require.Len(t, file.Animations, 3)

	fade := file.Animations[0]
	assert.Equal(t, anim.KindFloat, fade.Kind)
	assert.False(t, fade.From.IsVec)
	assert.Equal(t, 1.0, fade.To.Scalar)
	require.NotNil(t, fade.Duration)
	assert.Equal(t, 0.5, *fade.Duration)
	assert.Equal(t, anim.Destroy, fade.Repeat)
	assert.Equal(t, "snappy", fade.Easing.Name)

	slide := file.Animations[1]
	assert.Equal(t, anim.KindPosition, slide.Kind)
	assert.Equal(t, anim.Vec3{X: 10, Y: 5}, slide.To.Vector)
	assert.Equal(t, anim.PingPong, slide.Repeat)
	assert.True(t, slide.AutoStart)
	assert.Nil(t, slide.Duration)

	pulse := file.Animations[2]
	assert.Equal(t, anim.Loop, pulse.Repeat)
	assert.Equal(t, 0.25, pulse.Delay)
	require.NotNil(t, pulse.Easing.Inline)
	assert.Equal(t, [4]float64{0.3, 0, 0.7, 1}, pulse.Easing.Inline.Handles())
}

func TestDecodeEmpty(t *testing.T) {
	file := decode(t, "")
	assert.Empty(t, file.Animations)
	assert.Equal(t, config.DefaultTickRate, file.Rate())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{
			name: "unknown curve",
			doc:  "animations:\n  - {name: a, kind: float, from: 0, to: 1, easing: wobble}\n",
			err:  config.ErrUnknownCurve,
		},
		{
			name: "zero duration",
			doc:  "animations:\n  - {name: a, kind: float, from: 0, to: 1, duration: 0}\n",
			err:  config.ErrInvalidDuration,
		},
		{
			name: "negative delay",
			doc:  "animations:\n  - {name: a, kind: float, from: 0, to: 1, delay: -1}\n",
			err:  config.ErrInvalidDuration,
		},
		{
			name: "vector for float",
			doc:  "animations:\n  - {name: a, kind: float, from: [0, 0, 0], to: 1}\n",
			err:  config.ErrInvalidValue,
		},
		{
			name: "scalar for position",
			doc:  "animations:\n  - {name: a, kind: position, from: 0, to: 1}\n",
			err:  config.ErrInvalidValue,
		},
		{
			name: "short vector",
			doc:  "animations:\n  - {name: a, kind: scale, from: [0, 0], to: [1, 1, 1]}\n",
			err:  config.ErrInvalidValue,
		},
		{
			name: "duplicate name",
			doc:  "animations:\n  - {name: a, kind: float, from: 0, to: 1}\n  - {name: a, kind: float, from: 0, to: 1}\n",
			err:  config.ErrDuplicateName,
		},
		{
			name: "unknown kind",
			doc:  "animations:\n  - {name: a, kind: spin, from: 0, to: 1}\n",
			err:  anim.ErrUnknownKind,
		},
		{
			name: "unknown repeat",
			doc:  "animations:\n  - {name: a, kind: float, from: 0, to: 1, repeat: bounce}\n",
			err:  anim.ErrUnknownRepeatMode,
		},
		{
			name: "bad curve",
			doc:  "curves:\n  broken: [0.1, 0.2]\n",
			err:  curve.ErrHandleCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := config.Decode(strings.NewReader("animations:\n  - {name: a, kind: float, from: 0, to: 1, speed: 3}\n"))
	assert.Error(t, err)
}

func TestDecodeRejectsUnnamedAnimation(t *testing.T) {
	_, err := config.Decode(strings.NewReader("animations:\n  - {kind: float, from: 0, to: 1}\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	file, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, file.Animations, 3)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileAnimationLookup(t *testing.T) {
	file := decode(t, sampleConfig)

	a, err := file.Animation("slide")
	require.NoError(t, err)
	assert.Equal(t, "slide", a.Name)

	_, err = file.Animation("spin")
	assert.ErrorIs(t, err, config.ErrUnknownAnimation)
}

func TestRoundTrip(t *testing.T) {
	file := decode(t, sampleConfig)

	out, err := yaml.Marshal(file)
	require.NoError(t, err)

	again := decode(t, string(out))
	assert.Equal(t, file.Curves["snappy"].Handles(), again.Curves["snappy"].Handles())
	require.Len(t, again.Animations, 3)
	for i := range file.Animations {
		assert.Equal(t, file.Animations[i].Name, again.Animations[i].Name)
		assert.Equal(t, file.Animations[i].Kind, again.Animations[i].Kind)
		assert.Equal(t, file.Animations[i].Repeat, again.Animations[i].Repeat)
		assert.Equal(t, file.Animations[i].From, again.Animations[i].From)
		assert.Equal(t, file.Animations[i].To, again.Animations[i].To)
		assert.Equal(t, file.Animations[i].Easing.Name, again.Animations[i].Easing.Name)
	}
}

func TestBuildFloat(t *testing.T) {
	file := decode(t, sampleConfig)
	lib := config.NewLibrary(file)

	var got []float64
	ended := 0
	def, err := file.Animation("fade")
	require.NoError(t, err)

	a, err := def.Build(lib, config.Sinks{
		Update: func(v float64) { got = append(got, v) },
		End:    func() { ended++ },
	})
	require.NoError(t, err)

	assert.Equal(t, 0.5, a.Duration())
	snappy, err := lib.Get("snappy")
	require.NoError(t, err)
	assert.Same(t, snappy, a.Curve())

	a.Start(0)
	assert.Equal(t, anim.StepFinished, a.Tick(1))
	assert.Equal(t, []float64{1}, got)
	assert.Equal(t, 1, ended)
}

func TestBuildVector(t *testing.T) {
	file := decode(t, sampleConfig)
	def, err := file.Animation("pulse")
	require.NoError(t, err)

	var tf anim.Transform
	a, err := def.Build(nil, config.Sinks{Target: &tf})
	require.NoError(t, err)

	assert.Equal(t, anim.KindScale, a.Kind())
	assert.Equal(t, anim.Loop, a.Repeat())
	assert.Equal(t, 0.25, a.Delay())
	assert.Equal(t, [4]float64{0.3, 0, 0.7, 1}, a.Curve().Handles())
	assert.NotSame(t, def.Easing.Inline, a.Curve())

	a.Start(0)
	assert.Equal(t, anim.StepDelayed, a.Tick(0.1))
	assert.Equal(t, anim.Vec3{}, tf.Scale)
	a.Tick(0.25)
	assert.Equal(t, anim.Vec3{X: 1, Y: 1, Z: 1}, tf.Scale)
}

func TestBuildDefaultEasing(t *testing.T) {
	def := &config.Animation{Name: "plain", Kind: anim.KindFloat}
	a, err := def.Build(config.NewLibrary(nil), config.Sinks{})
	require.NoError(t, err)
	assert.Equal(t, curve.Default().Handles(), a.Curve().Handles())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func baseName(path string) string {
	return filepath.Base(path)
}

func TestFileCurve(t *testing.T) {
	file := decode(t, sampleConfig)

	named, err := file.Curve(config.EasingRef{Name: "snappy"})
	require.NoError(t, err)
	assert.NotSame(t, file.Curves["snappy"], named)
	assert.Equal(t, file.Curves["snappy"].Handles(), named.Handles())

	preset, err := file.Curve(config.EasingRef{Name: "ease"})
	require.NoError(t, err)
	assert.Equal(t, [4]float64{0.25, 0.1, 0.25, 1}, preset.Handles())

	_, err = file.Curve(config.EasingRef{Name: "wobble"})
	assert.ErrorIs(t, err, config.ErrUnknownCurve)
}

func TestFileBuildByName(t *testing.T) {
	file := decode(t, sampleConfig)

	var tf anim.Transform
	a, err := file.Build("slide", nil, config.Sinks{Target: &tf})
	require.NoError(t, err)
	assert.Equal(t, anim.PingPong, a.Repeat())
	assert.True(t, a.AutoStart())
	assert.Same(t, anim.Target(&tf), a.Target())

	_, err = file.Build("spin", nil, config.Sinks{})
	assert.ErrorIs(t, err, config.ErrUnknownAnimation)
}
