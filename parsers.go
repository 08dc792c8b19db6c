package xlists

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// parseListByRestID parses the ListByRestId GraphQL response.
func parseListByRestID(body []byte) (*List, error) {
	var raw struct {
		Data struct {
			List listData `json:"list"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal ListByRestId: %w", err)
	}
	if len(raw.Errors) > 0 {
		return nil, fmt.Errorf("API error: %s", raw.Errors[0].Message)
	}
	if raw.Data.List.IDStr == "" {
		return nil, fmt.Errorf("list not found in response")
	}
	l := parseListData(raw.Data.List)
	return &l, nil
}

// parseMembersPage parses one ListMembers page into members and the bottom
// cursor. An absent cursor means the server has no more pages.
func parseMembersPage(body []byte) ([]Member, string, error) {
	var raw struct {
		Data struct {
			List struct {
				MembersTimeline struct {
					Timeline timelineObj `json:"timeline"`
				} `json:"members_timeline"`
			} `json:"list"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, "", fmt.Errorf("unmarshal ListMembers: %w", err)
	}

	var members []Member
	var nextCursor string

	for _, instruction := range raw.Data.List.MembersTimeline.Timeline.Instructions {
		entries := instruction.Entries
		if instruction.Entry != nil {
			entries = append(entries, *instruction.Entry)
		}
		for _, entry := range entries {
			if entry.Content.EntryType == "TimelineTimelineCursor" || entry.Content.TypeName == "TimelineTimelineCursor" {
				if entry.Content.CursorType == "Bottom" || strings.Contains(entry.EntryID, "cursor-bottom") {
					nextCursor = entry.Content.Value
				}
				continue
			}
			if entry.Content.ItemContent == nil {
				continue
			}
			var item struct {
				TypeName    string `json:"__typename"`
				UserResults struct {
					Result memberResult `json:"result"`
				} `json:"user_results"`
			}
			if err := json.Unmarshal(entry.Content.ItemContent, &item); err != nil {
				continue
			}
			if item.TypeName != "" && item.TypeName != "TimelineUser" {
				continue
			}
			m, err := parseMemberResult(item.UserResults.Result)
			if err != nil {
				slog.Debug("skip member parse error", slog.Any("error", err))
				continue
			}
			members = append(members, m)
		}
	}
	return members, nextCursor, nil
}

// parseListsTimeline parses the ListsManagementPageTimeline response. Lists
// arrive in two entry shapes: module entries carrying nested items, and
// direct item entries. Entries without a nested list object are skipped.
func parseListsTimeline(body []byte) ([]List, error) {
	var raw struct {
		Data struct {
			Viewer struct {
				ListManagementTimeline struct {
					Timeline timelineObj `json:"timeline"`
				} `json:"list_management_timeline"`
			} `json:"viewer"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal ListsManagementPageTimeline: %w", err)
	}

	var lists []List
	for _, instruction := range raw.Data.Viewer.ListManagementTimeline.Timeline.Instructions {
		for _, entry := range instruction.Entries {
			for _, item := range entry.Content.Items {
				if l, ok := decodeListItem(item.Item.ItemContent); ok {
					lists = append(lists, l)
				}
			}
			if l, ok := decodeListItem(entry.Content.ItemContent); ok {
				lists = append(lists, l)
			}
		}
	}
	return lists, nil
}

// decodeListItem extracts a list from an itemContent blob, reporting false
// when the nested list object is absent or malformed.
func decodeListItem(itemContent json.RawMessage) (List, bool) {
	if itemContent == nil {
		return List{}, false
	}
	var item struct {
		List *listData `json:"list"`
	}
	if err := json.Unmarshal(itemContent, &item); err != nil {
		slog.Debug("skip list entry parse error", slog.Any("error", err))
		return List{}, false
	}
	if item.List == nil || item.List.IDStr == "" {
		return List{}, false
	}
	return parseListData(*item.List), true
}

// --- Timeline types ---

type timelineObj struct {
	Instructions []timelineInstruction `json:"instructions"`
}

type timelineInstruction struct {
	Type    string          `json:"type"`
	Entries []timelineEntry `json:"entries"`
	Entry   *timelineEntry  `json:"entry"`
}

type timelineEntry struct {
	EntryID string          `json:"entryId"`
	Content timelineContent `json:"content"`
}

type timelineContent struct {
	EntryType   string          `json:"entryType"`
	TypeName    string          `json:"__typename"`
	ItemContent json.RawMessage `json:"itemContent"`
	Items       []moduleItem    `json:"items"`
	Value       string          `json:"value"`
	CursorType  string          `json:"cursorType"`
}

type moduleItem struct {
	Item struct {
		ItemContent json.RawMessage `json:"itemContent"`
	} `json:"item"`
}

type listData struct {
	IDStr           string `json:"id_str"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	MemberCount     int    `json:"member_count"`
	SubscriberCount int    `json:"subscriber_count"`
	Mode            string `json:"mode"`
	CreatedAt       int64  `json:"created_at"`
	UserResults     struct {
		Result ownerResult `json:"result"`
	} `json:"user_results"`
}

type ownerResult struct {
	Legacy ownerIdentity `json:"legacy"`
	Core   ownerIdentity `json:"core"`
}

type ownerIdentity struct {
	ScreenName string `json:"screen_name"`
	Name       string `json:"name"`
}

type memberResult struct {
	TypeName string `json:"__typename"`
	RestID   string `json:"rest_id"`
	Legacy   *struct {
		Name            string `json:"name"`
		ScreenName      string `json:"screen_name"`
		Description     string `json:"description"`
		FollowersCount  int    `json:"followers_count"`
		FriendsCount    int    `json:"friends_count"`
		CreatedAt       string `json:"created_at"`
		Location        string `json:"location"`
		URL             string `json:"url"`
		ProfileImageURL string `json:"profile_image_url_https"`
	} `json:"legacy"`
	IsBlueVerified bool `json:"is_blue_verified"`
}

// --- Extraction helpers ---

func parseListData(l listData) List {
	mode := l.Mode
	if mode == "" {
		mode = "Public"
	}
	// Newer responses moved the owner identity from legacy to core.
	owner := l.UserResults.Result.Legacy
	if owner.ScreenName == "" && owner.Name == "" {
		owner = l.UserResults.Result.Core
	}
	return List{
		ID:              l.IDStr,
		Name:            l.Name,
		Description:     l.Description,
		MemberCount:     l.MemberCount,
		SubscriberCount: l.SubscriberCount,
		Mode:            mode,
		CreatedAt:       l.CreatedAt,
		OwnerHandle:     owner.ScreenName,
		OwnerName:       owner.Name,
	}
}

func parseMemberResult(r memberResult) (Member, error) {
	if r.RestID == "" {
		return Member{}, fmt.Errorf("empty member rest_id (typename=%s)", r.TypeName)
	}
	if r.Legacy == nil {
		return Member{}, fmt.Errorf("member %s missing legacy fields", r.RestID)
	}
	return Member{
		ID:              r.RestID,
		Handle:          r.Legacy.ScreenName,
		Name:            r.Legacy.Name,
		Description:     r.Legacy.Description,
		FollowersCount:  r.Legacy.FollowersCount,
		FollowingCount:  r.Legacy.FriendsCount,
		Verified:        r.IsBlueVerified,
		ProfileImageURL: r.Legacy.ProfileImageURL,
		CreatedAt:       r.Legacy.CreatedAt,
		Location:        r.Legacy.Location,
		URL:             r.Legacy.URL,
	}, nil
}
