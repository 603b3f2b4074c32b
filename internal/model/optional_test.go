package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_Get(t *testing.T) {
	v, ok := Some(42).Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	v, ok = None[int]().Get()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestOptional_OrElse(t *testing.T) {
	assert.Equal(t, "x", Some("x").OrElse("y"))
	assert.Equal(t, "y", None[string]().OrElse("y"))
}

func TestOptional_UnmarshalNullAndAbsent(t *testing.T) {
	var withNull CorralGroup
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"G1","line":null}`), &withNull))
	assert.True(t, withNull.Line.IsZero())

	var absent CorralGroup
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"G1"}`), &absent))
	assert.True(t, absent.Line.IsZero())
}

func TestOptional_UnmarshalPresent(t *testing.T) {
	var g CorralGroup
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"G1","line":{"id":7,"name":"Bovinos","status":true}}`), &g))

	line, ok := g.Line.Get()
	require.True(t, ok)
	assert.Equal(t, 7, line.ID)
	assert.Equal(t, "Bovinos", line.Name)
	assert.True(t, line.Status)
}

func TestOptional_OmitzeroDropsNone(t *testing.T) {
	data, err := json.Marshal(Corral{ID: 1, Name: "C1"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	_, present := raw["corralGroup"]
	assert.False(t, present)
}

func TestOptional_MarshalSome(t *testing.T) {
	data, err := json.Marshal(Some(Specie{ID: 2, Name: "Porcino"}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"Porcino"`)

	data, err = json.Marshal(None[Specie]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestIntroducer_NestedBrandsRoundTrip(t *testing.T) {
	in := Introducer{
		ID:   5,
		Code: "INT-005",
		Name: "Ganadera del Sur",
		Brands: []Brand{
			{ID: 1, Name: "GS", Introducer: Some(IntroducerRef{ID: 5, Code: "INT-005"}), Species: []Specie{{ID: 1, Name: "Bovino"}}},
		},
		Status: true,
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Introducer
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestPage_Normalize(t *testing.T) {
	p := Page{}
	p.Normalize()
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)

	p = Page{Page: 3, Limit: 50}
	p.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.Limit)
}

func TestPerson_FullName(t *testing.T) {
	assert.Equal(t, "Ana Pérez", Person{FirstName: "Ana", LastName: "Pérez"}.FullName())
	assert.Equal(t, "Ana", Person{FirstName: "Ana"}.FullName())
}

func TestUser_DisplayName(t *testing.T) {
	linked := User{Email: "ops@camal.ec", Person: Some(Person{FirstName: "Ana", LastName: "Pérez"})}
	assert.Equal(t, "Ana Pérez", linked.DisplayName())

	assert.Equal(t, "ops@camal.ec", User{Email: "ops@camal.ec"}.DisplayName())
}
