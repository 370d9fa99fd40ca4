package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type named string

func (n named) String() string { return string(n) }

func TestFieldKeys(t *testing.T) {
	cases := []struct {
		field zap.Field
		key   string
	}{
		{Op("set_mocap_mode"), KeyOp},
		{Mode(named("handsOn")), KeyMode},
		{Light(named("dark")), KeyLight},
		{Mount(named("tripod")), KeyMount},
		{Dimension(named("width")), KeyDimension},
		{Frame(3), KeyFrame},
		{Path("/tmp/x"), KeyPath},
	}
	for _, c := range cases {
		assert.Equal(t, c.key, c.field.Key)
	}
}

func TestNewParsesLevel(t *testing.T) {
	file := filepath.Join(t.TempDir(), "zonectl.log")
	l, err := New("DEBUG", file, false)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	_ = l.Sync()

	_, err = New("loud", "", false)
	assert.Error(t, err)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	l := zap.NewExample()
	assert.Same(t, l, OrNop(l))
}
