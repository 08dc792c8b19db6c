package xlists

import (
	"sort"
	"strings"
)

// List is a snapshot of an X list's metadata.
type List struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	MemberCount     int    `json:"member_count"`
	SubscriberCount int    `json:"subscriber_count"`
	Mode            string `json:"mode"`       // "Public" or "Private"
	CreatedAt       int64  `json:"created_at"` // unix millis
	OwnerHandle     string `json:"owner_handle"`
	OwnerName       string `json:"owner_name"`
}

// Member is a snapshot of one list member's profile.
type Member struct {
	ID              string `json:"id"`
	Handle          string `json:"handle"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	FollowersCount  int    `json:"followers_count"`
	FollowingCount  int    `json:"following_count"`
	Verified        bool   `json:"verified"`
	ProfileImageURL string `json:"profile_image_url"`
	CreatedAt       string `json:"created_at"`
	Location        string `json:"location"`
	URL             string `json:"url"`
}

// Export is the document written by ExportList.
type Export struct {
	List        List     `json:"list"`
	ExportedAt  string   `json:"exported_at"`
	MemberCount int      `json:"member_count"`
	Members     []Member `json:"members"`
}

// Credentials holds a session harvested from a running browser.
// Valid for one process run; never persisted.
type Credentials struct {
	AuthToken string            // auth_token cookie
	CSRFToken string            // ct0 cookie
	Bearer    string            // fixed web-app bearer token
	Cookies   map[string]string // harvested cookie jar for the target domain
}

// CookieString joins the harvested cookies into a Cookie header value.
// Names are sorted so successive requests send an identical header.
func (c *Credentials) CookieString() string {
	names := make([]string, 0, len(c.Cookies))
	for name := range c.Cookies {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(c.Cookies[name])
	}
	return b.String()
}
