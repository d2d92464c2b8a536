package forms

import (
	"strconv"
	"strings"

	"pulse/models"
)

// PostForm carries the create/edit post fields. The image part of the
// multipart body is handled by the view; the form only validates text and
// group.
type PostForm struct {
	Text  string `form:"text"`
	Group string `form:"group"`
}

// Validate returns one message per bad field; an empty map means the form is
// good to save.
func (f *PostForm) Validate() map[string]string {
	errors := map[string]string{}
	if strings.TrimSpace(f.Text) == "" {
		errors["text"] = "Post text is required"
	}
	if f.Group != "" {
		id, err := strconv.ParseUint(f.Group, 10, 64)
		if err != nil {
			errors["group"] = "Select a valid group"
		} else if _, err := models.GroupByID(id); err != nil {
			errors["group"] = "Select a valid group"
		}
	}
	return errors
}

// GroupID is the parsed optional group reference; call after Validate.
func (f *PostForm) GroupID() *uint64 {
	if f.Group == "" {
		return nil
	}
	id, err := strconv.ParseUint(f.Group, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}
