package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentMap_ValueScan(t *testing.T) {
	m := DocumentMap{"electricity_bill": "documents/bill.pdf"}

	v, err := m.Value()
	require.NoError(t, err)

	var scanned DocumentMap
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, m, scanned)
}

func TestDocumentMap_NilAndEmpty(t *testing.T) {
	var m DocumentMap
	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	var scanned DocumentMap
	require.NoError(t, scanned.Scan(nil))
	assert.NotNil(t, scanned)
	assert.Empty(t, scanned)

	require.NoError(t, scanned.Scan(""))
	assert.Empty(t, scanned)
}

func TestDocumentMap_ScanBytes(t *testing.T) {
	var m DocumentMap
	require.NoError(t, m.Scan([]byte(`{"cnic_front":"documents/front.jpg"}`)))
	assert.Equal(t, "documents/front.jpg", m["cnic_front"])

	assert.Error(t, m.Scan(42))
}

func TestStringList_ValueScan(t *testing.T) {
	l := StringList{"uploads/a.jpg", "uploads/b.jpg"}

	v, err := l.Value()
	require.NoError(t, err)

	var scanned StringList
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, l, scanned)
}

func TestStringList_NilValue(t *testing.T) {
	var l StringList
	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var scanned StringList
	require.NoError(t, scanned.Scan(nil))
	assert.NotNil(t, scanned)
	assert.Len(t, scanned, 0)
}

func TestSpecMap_ValueScan(t *testing.T) {
	m := SpecMap{"wattage": "550W", "efficiency": "21.3%"}

	v, err := m.Value()
	require.NoError(t, err)

	var scanned SpecMap
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, m, scanned)
}
