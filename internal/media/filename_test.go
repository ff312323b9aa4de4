package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"acai", "acai"},
		{"Açaí da Casa", "acai-da-casa"},
		{"pão-de-queijo", "pao-de-queijo"},
		{"X  Burger!!", "x-burger"},
		{"FOTO_2024 (1)", "foto-2024-1"},
		{"___", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slug(tc.in), "input %q", tc.in)
	}
}

func TestParsePublicID(t *testing.T) {
	id, err := parsePublicID("https://res.cloudinary.com/demo/image/upload/v123/nahora-delivery-uploads/img-17000-acai.jpg")
	assert.NoError(t, err)
	assert.Equal(t, "nahora-delivery-uploads/img-17000-acai", id)

	_, err = parsePublicID("https://res.cloudinary.com/justone")
	assert.Error(t, err)
}
