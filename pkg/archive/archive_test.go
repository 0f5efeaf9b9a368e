package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T, maxRecords int) (*Archive, string) {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	a, err := Open(dbPath, maxRecords)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a, dbPath
}

func TestOpenCreatesDatabase(t *testing.T) {
	a, dbPath := openTest(t, 0)
	_ = a

	_, err := os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestOpenCreatesNestedDirectory(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "nested", "archive.db")

	a, err := Open(dbPath, 0)
	require.NoError(t, err)
	defer a.Close()

	_, err = os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
}

func TestRecordDecodeAndList(t *testing.T) {
	a, _ := openTest(t, 0)

	err := a.RecordDecode("ZCZC-CIV-ADR-020173+0100-3441707-ERN/LB-",
		"The Civil Authorities have issued ", "Administrative Message", "Sedgwick, KS", "ERN/LB", "formatted text")
	require.NoError(t, err)

	records, err := a.List(Query{Direction: "decode"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Administrative Message", records[0].Event)
	assert.Equal(t, "ERN/LB", records[0].Sender)
}

func TestRecordGenerateAndList(t *testing.T) {
	a, _ := openTest(t, 0)

	err := a.RecordGenerate("ZCZC-WXR-TOR-020173+0030-3451200-NWS/TEST-", "NWS", "/tmp/out.wav")
	require.NoError(t, err)

	records, err := a.List(Query{Direction: "generate"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "NWS", records[0].Mode)
	assert.Equal(t, "/tmp/out.wav", records[0].OutputPath)
}

func TestCleanupEnforcesMaxRecords(t *testing.T) {
	a, _ := openTest(t, 3)

	for i := 0; i < 5; i++ {
		require.NoError(t, a.RecordGenerate("ZCZC-TEST", "DEFAULT", "out.wav"))
	}

	count, err := a.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestListOrdersNewestFirst(t *testing.T) {
	a, _ := openTest(t, 0)

	require.NoError(t, a.RecordGenerate("ZCZC-FIRST", "DEFAULT", "a.wav"))
	require.NoError(t, a.RecordGenerate("ZCZC-SECOND", "DEFAULT", "b.wav"))

	records, err := a.List(Query{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "ZCZC-SECOND", records[0].Header)
}
