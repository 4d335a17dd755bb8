package enigma

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-enigma/pkg/metrics"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	require.NoError(t, c.Write(&metric))
	return metric.Counter.GetValue()
}

func TestNewCodecRejectsSize(t *testing.T) {
	_, err := NewCodec(0, nil)
	assert.Error(t, err)
}

func TestCodecCachesSuccessfulDecodes(t *testing.T) {
	reg := metrics.NewRegistry()
	codec, err := NewCodec(4, reg)
	require.NoError(t, err)

	first, err := codec.Decode("A I-II")
	require.NoError(t, err)
	second, err := codec.Decode("  A I-II ")
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, 1, codec.Len())
	assert.Equal(t, 1.0, counterValue(t, reg.CodecCacheHitsTotal))
	assert.Equal(t, 1.0, counterValue(t, reg.CodecCacheMissesTotal))
	assert.Equal(t, 2.0, counterValue(t, reg.ConfigurationParsesTotal.WithLabelValues("ok")))

	_, err = codec.Decode("A I-II AB:AD")
	assert.True(t, errors.Is(err, ErrNotUniquePair))
	_, err = codec.Decode("A I-II AB:AD")
	assert.True(t, errors.Is(err, ErrNotUniquePair))

	assert.Equal(t, 1, codec.Len(), "failures must not be cached")
	assert.Equal(t, 3.0, counterValue(t, reg.CodecCacheMissesTotal))
	assert.Equal(t, 2.0, counterValue(t, reg.ConfigurationErrorsTotal.WithLabelValues("not_unique_pair")))
}

func TestCodecReturnsIsolatedCopies(t *testing.T) {
	codec, err := NewCodec(4, nil)
	require.NoError(t, err)

	cfg, err := codec.Decode("B III:4-IV:7 QW")
	require.NoError(t, err)
	cfg.Rotors[0].Name = "V"
	cfg.Plugs[0] = Pair{'z', 'y'}

	again, err := codec.Decode("B III:4-IV:7 QW")
	require.NoError(t, err)
	assert.Equal(t, "B III:4-IV:7 QW", again.String())
}

func TestCodecParseBuildsFreshComponents(t *testing.T) {
	codec, err := NewCodec(4, nil)
	require.NoError(t, err)

	_, a, pa, err := codec.Parse("C I:3-II AB")
	require.NoError(t, err)
	_, b, pb, err := codec.Parse("C I:3-II AB")
	require.NoError(t, err)

	require.NoError(t, a[0].SetPosition(20))
	pa.Unplug(Pair{'a', 'b'})

	assert.Equal(t, 3, b[0].Position())
	assert.Equal(t, 1, pb.Len())
}

func TestCodecEviction(t *testing.T) {
	codec, err := NewCodec(2, nil)
	require.NoError(t, err)

	for _, s := range []string{"A I", "A II", "A III"} {
		_, err := codec.Decode(s)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, codec.Len())

	codec.Purge()
	assert.Equal(t, 0, codec.Len())
}
