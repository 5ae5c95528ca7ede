// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapa7oJXTpJT3FOOdFxP7PeAQΞΞ   = ord.NewMapSer[string, []WordOccurrence](ord.String, sliceTZ2X5TAUEGsTuuB3NeBgvgΞΞ)
	sliceTZ2X5TAUEGsTuuB3NeBgvgΞΞ = ord.NewSliceSer[WordOccurrence](WordOccurrenceMUS)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var SourceKindMUS = sourceKindMUS{}

type sourceKindMUS struct{}

func (s sourceKindMUS) Marshal(v SourceKind, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s sourceKindMUS) Unmarshal(bs []byte) (v SourceKind, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = SourceKind(tmp)
	return
}

func (s sourceKindMUS) Size(v SourceKind) (size int) {
	return varint.Int.Size(int(v))
}

func (s sourceKindMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var WordIndexMUS = wordIndexMUS{}

type wordIndexMUS struct{}

func (s wordIndexMUS) Marshal(v WordIndex, bs []byte) (n int) {
	return mapa7oJXTpJT3FOOdFxP7PeAQΞΞ.Marshal(map[string][]WordOccurrence(v), bs)
}

func (s wordIndexMUS) Unmarshal(bs []byte) (v WordIndex, n int, err error) {
	tmp, n, err := mapa7oJXTpJT3FOOdFxP7PeAQΞΞ.Unmarshal(bs)
	if err != nil {
		return
	}
	v = WordIndex(tmp)
	return
}

func (s wordIndexMUS) Size(v WordIndex) (size int) {
	return mapa7oJXTpJT3FOOdFxP7PeAQΞΞ.Size(map[string][]WordOccurrence(v))
}

func (s wordIndexMUS) Skip(bs []byte) (n int, err error) {
	return mapa7oJXTpJT3FOOdFxP7PeAQΞΞ.Skip(bs)
}

var WordOccurrenceMUS = wordOccurrenceMUS{}

type wordOccurrenceMUS struct{}

func (s wordOccurrenceMUS) Marshal(v WordOccurrence, bs []byte) (n int) {
	n = varint.Int.Marshal(v.Sentence, bs)
	return n + varint.Int.Marshal(v.Position, bs[n:])
}

func (s wordOccurrenceMUS) Unmarshal(bs []byte) (v WordOccurrence, n int, err error) {
	v.Sentence, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Position, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s wordOccurrenceMUS) Size(v WordOccurrence) (size int) {
	size = varint.Int.Size(v.Sentence)
	return size + varint.Int.Size(v.Position)
}

func (s wordOccurrenceMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

var MaterialMUS = materialMUS{}

type materialMUS struct{}

func (s materialMUS) Marshal(v Material, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Date, bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	return n + WordIndexMUS.Marshal(v.WordIndex, bs[n:])
}

func (s materialMUS) Unmarshal(bs []byte) (v Material, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Date, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.WordIndex, n1, err = WordIndexMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s materialMUS) Size(v Material) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Date)
	size += ord.String.Size(v.Text)
	return size + WordIndexMUS.Size(v.WordIndex)
}

func (s materialMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = WordIndexMUS.Skip(bs[n:])
	n += n1
	return
}

var SettingsMUS = settingsMUS{}

type settingsMUS struct{}

func (s settingsMUS) Marshal(v Settings, bs []byte) (n int) {
	n = SourceKindMUS.Marshal(v.Source, bs)
	n += ord.String.Marshal(v.SourceLabel, bs[n:])
	n += ord.String.Marshal(v.ContentHash, bs[n:])
	return n + ord.Bool.Marshal(v.AutoUpdate, bs[n:])
}

func (s settingsMUS) Unmarshal(bs []byte) (v Settings, n int, err error) {
	v.Source, n, err = SourceKindMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.SourceLabel, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ContentHash, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AutoUpdate, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	return
}

func (s settingsMUS) Size(v Settings) (size int) {
	size = SourceKindMUS.Size(v.Source)
	size += ord.String.Size(v.SourceLabel)
	size += ord.String.Size(v.ContentHash)
	return size + ord.Bool.Size(v.AutoUpdate)
}

func (s settingsMUS) Skip(bs []byte) (n int, err error) {
	n, err = SourceKindMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	return
}
