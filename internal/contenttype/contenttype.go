package contenttype

import (
	"fmt"

	"github.com/damoang/angple-moderation/internal/common"
)

// ContentType identifies one of the independently stored board families.
// The set is closed: every moderation operation dispatches through Resolve,
// and a key outside the set is a hard client error. The legacy platform
// silently fell back to the free board for unknown keys, which made typos
// moderate the wrong table.
type ContentType string

const (
	Freeboard ContentType = "freeboard"
	News      ContentType = "news"
	Notice    ContentType = "notice"
	Inquiry   ContentType = "inquiry"
	Chatboard ContentType = "chatboard"
)

// Tables holds the physical relation names for one content type
type Tables struct {
	Post       string
	Comment    string
	Attachment string
}

var registry = map[ContentType]Tables{
	Freeboard: tablesFor("freeboard"),
	News:      tablesFor("news"),
	Notice:    tablesFor("notice"),
	Inquiry:   tablesFor("inquiry"),
	Chatboard: tablesFor("chatboard"),
}

func tablesFor(base string) Tables {
	return Tables{
		Post:       base,
		Comment:    fmt.Sprintf("%s_comment", base),
		Attachment: fmt.Sprintf("%s_attach", base),
	}
}

// Resolve maps a runtime content-type key to its relation names.
// Unknown keys fail closed with ErrUnknownContentType.
func Resolve(key string) (ContentType, Tables, error) {
	ct := ContentType(key)
	tables, ok := registry[ct]
	if !ok {
		return "", Tables{}, fmt.Errorf("%w: %q", common.ErrUnknownContentType, key)
	}
	return ct, tables, nil
}

// All returns every registered content type (migration 용)
func All() []ContentType {
	return []ContentType{Freeboard, News, Notice, Inquiry, Chatboard}
}

// String implements fmt.Stringer
func (ct ContentType) String() string {
	return string(ct)
}
