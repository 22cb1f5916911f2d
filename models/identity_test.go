// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_Normalize(t *testing.T) {
	got := Identity{Name: "  Ana Souza ", Phone: " 11999990000\n"}.Normalize()

	assert.Equal(t, "Ana Souza", got.Name)
	assert.Equal(t, "11999990000", got.Phone)
}

func TestIdentity_Matches(t *testing.T) {
	id := Identity{Name: "Ana Souza", Phone: "1"}

	assert.True(t, id.Matches(User{Name: "ana souza"}))
	assert.True(t, id.Matches(User{Name: "ANA SOUZA"}))
	assert.False(t, id.Matches(User{Name: "Ana"}))
	assert.False(t, id.Matches(User{}))
}

func TestFirstName(t *testing.T) {
	tests := map[string]string{
		"Ana Souza":      "Ana",
		"Ana":            "Ana",
		"":               "",
		"Maria da Silva": "Maria",
		" Leading":       "",
	}

	for in, want := range tests {
		assert.Equal(t, want, FirstName(in), "FirstName(%q)", in)
	}

	assert.Equal(t, "Joao", User{Name: "Joao Pedro"}.FirstName())
}

func TestFoodView_MarshalsFlat(t *testing.T) {
	view := FoodView{
		Food:       Food{ID: 1, Name: "Coxinha", Quantity: 3},
		ReservedBy: []string{"Ana"},
		Reserved:   true,
	}

	b, err := json.Marshal(view)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"nome":"Coxinha","quantidade":3,"reservados":["Ana"],"reservado":true}`, string(b))
}

func TestUser_InsertPayloadOmitsID(t *testing.T) {
	b, err := json.Marshal(Identity{Name: "Ana", Phone: "1"}.ToUser())
	require.NoError(t, err)
	assert.JSONEq(t, `{"nome":"Ana","telefone":"1"}`, string(b))
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-17", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-17", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
