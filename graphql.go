package xlists

import (
	"context"
	"fmt"
)

// ListByID fetches metadata for one list.
func (c *Client) ListByID(ctx context.Context, listID string) (*List, error) {
	variables := map[string]any{
		"listId": listID,
	}
	url, err := EndpointURL("ListByRestId")
	if err != nil {
		return nil, err
	}
	url = addGraphQLParams(url, variables, Endpoints["ListByRestId"].Features)

	body, err := c.doGET(ctx, "ListByRestId", url)
	if err != nil {
		return nil, err
	}
	return parseListByRestID(body)
}

// ListMembersPage fetches one page of list members. It returns the page's
// members and the continuation cursor, "" when the server has no more pages.
func (c *Client) ListMembersPage(ctx context.Context, listID, cursor string) ([]Member, string, error) {
	variables := map[string]any{
		"listId": listID,
		"count":  c.cfg.PageSize,
	}
	if cursor != "" {
		variables["cursor"] = cursor
	}
	url, err := EndpointURL("ListMembers")
	if err != nil {
		return nil, "", err
	}
	url = addGraphQLParams(url, variables, Endpoints["ListMembers"].Features)

	body, err := c.doGET(ctx, "ListMembers", url)
	if err != nil {
		return nil, "", err
	}
	members, next, err := parseMembersPage(body)
	if err != nil {
		return nil, "", fmt.Errorf("parse ListMembers: %w", err)
	}
	return members, next, nil
}

// MyLists fetches all lists the authenticated user owns or follows.
func (c *Client) MyLists(ctx context.Context) ([]List, error) {
	variables := map[string]any{
		"count": 100,
	}
	url, err := EndpointURL("ListsManagementPageTimeline")
	if err != nil {
		return nil, err
	}
	url = addGraphQLParams(url, variables, Endpoints["ListsManagementPageTimeline"].Features)

	body, err := c.doGET(ctx, "ListsManagementPageTimeline", url)
	if err != nil {
		return nil, err
	}
	lists, err := parseListsTimeline(body)
	if err != nil {
		return nil, fmt.Errorf("parse ListsManagementPageTimeline: %w", err)
	}
	return lists, nil
}

// memberSource is the page-fetch surface MemberPager needs. *Client satisfies
// it; tests supply scripted pages.
type memberSource interface {
	ListMembersPage(ctx context.Context, listID, cursor string) ([]Member, string, error)
}

// MemberPager walks a list's membership one page at a time. It is finite and
// consumed once: create a fresh pager to restart from the first page.
type MemberPager struct {
	src      memberSource
	listID   string
	maxPages int

	cursor string
	pages  int
	done   bool
}

// NewMemberPager returns a pager over the given list's members.
func (c *Client) NewMemberPager(listID string) *MemberPager {
	return &MemberPager{src: c, listID: listID, maxPages: c.cfg.MaxPages}
}

// Next fetches the next page. done is true once the server reported the end
// of the list; the final page may still carry members.
func (p *MemberPager) Next(ctx context.Context) (members []Member, done bool, err error) {
	if p.done {
		return nil, true, nil
	}
	limit := p.maxPages
	if limit == 0 {
		limit = defaultMaxPages
	}
	if p.pages >= limit {
		return nil, true, fmt.Errorf("pagination exceeded %d pages, giving up", limit)
	}

	members, next, err := p.src.ListMembersPage(ctx, p.listID, p.cursor)
	if err != nil {
		return nil, false, err
	}
	p.pages++
	p.cursor = next

	if next == "" || len(members) == 0 {
		p.done = true
	}
	return members, p.done, nil
}

// ProgressFunc is invoked synchronously after each fetched page with the
// running member count. The API exposes no reliable total.
type ProgressFunc func(fetched int)

// AllListMembers drives pagination to exhaustion, returning every member in
// server order.
func (c *Client) AllListMembers(ctx context.Context, listID string, progress ProgressFunc) ([]Member, error) {
	return allMembers(ctx, c.NewMemberPager(listID), progress)
}

func allMembers(ctx context.Context, pager *MemberPager, progress ProgressFunc) ([]Member, error) {
	var members []Member
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		batch, done, err := pager.Next(ctx)
		if err != nil {
			return nil, err
		}
		members = append(members, batch...)
		if progress != nil {
			progress(len(members))
		}
		if done {
			return members, nil
		}
	}
}
