package storage

import (
	"testing"

	"github.com/poiesic/berkut/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestMarshalUnmarshalMaterial(t *testing.T) {
	material := &core.Material{
		Id:        1088,
		Date:      "01.02.2003",
		Text:      "Запрещенный материал. Вторая фраза!",
		WordIndex: core.BuildWordIndex("Запрещенный материал. Вторая фраза!"),
	}

	data := MarshalMaterial(material)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalMaterial(data)
	require.NoError(t, err)
	assert.Equal(t, material, decoded)
}

func TestMarshalUnmarshalSettings(t *testing.T) {
	settings := &core.Settings{
		Source:      core.SourceDelimitedTable,
		SourceLabel: "реестр.csv",
		ContentHash: core.HashContent("содержимое"),
		AutoUpdate:  true,
	}

	data := MarshalSettings(settings)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalSettings(data)
	require.NoError(t, err)
	assert.Equal(t, settings, decoded)
}

func TestUnmarshalInvalidData(t *testing.T) {
	_, err := UnmarshalID(nil)
	assert.Error(t, err)

	_, err = UnmarshalMaterial([]byte{})
	assert.Error(t, err)

	_, err = UnmarshalSettings([]byte{})
	assert.Error(t, err)
}
