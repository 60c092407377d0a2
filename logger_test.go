package structs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	structs "github.com/silentwarg/structs"
)

func TestTraceLoggerRecordsLoaderDiagnostics(t *testing.T) {
	typ := rootDescriptor()
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)

	trace := &structs.TraceLogger{}
	doc := []byte(`{"root":{"arr":[]}}`)
	require.NoError(t, structs.LoadJSON(v, "root", doc, structs.WithLoaderLogger(trace)))
	assert.NotEmpty(t, trace.Lines)
}

func TestNullLoggerDiscardsEverything(t *testing.T) {
	var l structs.NullLogger
	l.Emerg("should not panic %d", 1)
	l.Debug("nor this")
}

func TestZapLoggerNilFallsBackToNop(t *testing.T) {
	zl := structs.NewZapLogger(nil)
	zl.Info("hello %s", "world")
}
