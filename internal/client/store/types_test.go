package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"petcare/internal/client/store"
)

func TestDefaultPhoto_ByType(t *testing.T) {
	cases := []struct {
		typ  string
		want string
	}{
		{"dog", "no-photo-dog.png"},
		{"DOG", "no-photo-dog.png"},
		{"cat", "no-photo-cat.png"},
		{"Cat", "no-photo-cat.png"},
		{"hamster", "no-photo.png"},
		{"", "no-photo.png"},
	}
	for _, tc := range cases {
		p := store.Pet{Type: tc.typ}
		assert.Equal(t, tc.want, p.DefaultPhoto(), "type=%q", tc.typ)
	}
}

func TestDisplayPhoto_PrefersUploadedPhoto(t *testing.T) {
	p := store.Pet{Type: "dog", Photo: "file:///rex.png"}
	assert.Equal(t, "file:///rex.png", p.DisplayPhoto())

	p.Photo = ""
	assert.Equal(t, "no-photo-dog.png", p.DisplayPhoto())
}

func TestSortCategories_UnknownNamesGoLast(t *testing.T) {
	cats := []store.Category{
		{CategoryName: "surgery"},
		{CategoryName: "other"},
		{CategoryName: "vaccine"},
		{CategoryName: "check up"},
		{CategoryName: "prevention"},
	}
	store.SortCategories(cats)

	var names []string
	for _, c := range cats {
		names = append(names, c.CategoryName)
	}
	assert.Equal(t, []string{"vaccine", "prevention", "check up", "other", "surgery"}, names)
}
