package forms

import "strings"

type CommentForm struct {
	Text string `form:"text"`
}

func (f *CommentForm) Validate() map[string]string {
	errors := map[string]string{}
	if strings.TrimSpace(f.Text) == "" {
		errors["text"] = "Comment text is required"
	}
	return errors
}
