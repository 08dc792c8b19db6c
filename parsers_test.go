package xlists

import "testing"

func TestParseMembersPage(t *testing.T) {
	body := `{
		"data": {
			"list": {
				"members_timeline": {
					"timeline": {
						"instructions": [{
							"type": "TimelineAddEntries",
							"entries": [
								{
									"entryId": "user-111",
									"content": {
										"entryType": "TimelineTimelineItem",
										"itemContent": {
											"__typename": "TimelineUser",
											"user_results": {
												"result": {
													"__typename": "User",
													"rest_id": "111",
													"is_blue_verified": true,
													"legacy": {
														"name": "First User",
														"screen_name": "first",
														"description": "bio one",
														"followers_count": 10,
														"friends_count": 5,
														"created_at": "Mon Jan 02 15:04:05 +0000 2020",
														"location": "Berlin",
														"profile_image_url_https": "https://pbs.twimg.com/profile_images/1/a.jpg"
													}
												}
											}
										}
									}
								},
								{
									"entryId": "user-222",
									"content": {
										"entryType": "TimelineTimelineItem",
										"itemContent": {
											"__typename": "TimelineUser",
											"user_results": {
												"result": {
													"__typename": "User",
													"rest_id": "222",
													"legacy": {
														"name": "Second User",
														"screen_name": "second",
														"followers_count": 2,
														"friends_count": 1
													}
												}
											}
										}
									}
								},
								{
									"entryId": "cursor-bottom-123",
									"content": {
										"entryType": "TimelineTimelineCursor",
										"value": "NEXT_PAGE_TOKEN",
										"cursorType": "Bottom"
									}
								}
							]
						}]
					}
				}
			}
		}
	}`

	members, cursor, err := parseMembersPage([]byte(body))
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if members[0].ID != "111" || members[1].ID != "222" {
		t.Fatalf("wrong member order: %s, %s", members[0].ID, members[1].ID)
	}
	if members[0].Handle != "first" {
		t.Fatalf("expected handle first, got %s", members[0].Handle)
	}
	if !members[0].Verified {
		t.Fatal("expected first member verified")
	}
	if members[0].Location != "Berlin" {
		t.Fatalf("expected location Berlin, got %q", members[0].Location)
	}
	if members[1].Verified {
		t.Fatal("expected second member not verified")
	}
	if cursor != "NEXT_PAGE_TOKEN" {
		t.Fatalf("expected cursor NEXT_PAGE_TOKEN, got %q", cursor)
	}
}

func TestParseMembersPage_SkipsEntriesWithoutLegacy(t *testing.T) {
	body := `{
		"data": {
			"list": {
				"members_timeline": {
					"timeline": {
						"instructions": [{
							"entries": [
								{
									"entryId": "user-111",
									"content": {
										"itemContent": {
											"__typename": "TimelineUser",
											"user_results": {
												"result": {"__typename": "UserUnavailable", "rest_id": "111"}
											}
										}
									}
								},
								{
									"entryId": "user-222",
									"content": {
										"itemContent": {
											"__typename": "TimelineUser",
											"user_results": {
												"result": {
													"rest_id": "222",
													"legacy": {"name": "Kept", "screen_name": "kept"}
												}
											}
										}
									}
								}
							]
						}]
					}
				}
			}
		}
	}`

	members, cursor, err := parseMembersPage([]byte(body))
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 1 {
		t.Fatalf("expected 1 member after skipping, got %d", len(members))
	}
	if members[0].ID != "222" {
		t.Fatalf("expected surviving member 222, got %s", members[0].ID)
	}
	if cursor != "" {
		t.Fatalf("expected no cursor, got %q", cursor)
	}
}

func TestParseMembersPage_Empty(t *testing.T) {
	body := `{"data": {"list": {"members_timeline": {"timeline": {"instructions": []}}}}}`

	members, cursor, err := parseMembersPage([]byte(body))
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 0 || cursor != "" {
		t.Fatalf("expected empty page, got %d members cursor %q", len(members), cursor)
	}
}

func TestParseListByRestID(t *testing.T) {
	body := `{
		"data": {
			"list": {
				"id_str": "1876334018150678826",
				"name": "Gauntlet",
				"description": "People worth watching",
				"member_count": 42,
				"subscriber_count": 3,
				"mode": "Private",
				"created_at": 1736000000000,
				"user_results": {
					"result": {
						"legacy": {"screen_name": "owner", "name": "Owner Name"}
					}
				}
			}
		}
	}`

	l, err := parseListByRestID([]byte(body))
	if err != nil {
		t.Fatal(err)
	}
	if l.ID != "1876334018150678826" {
		t.Fatalf("wrong id: %s", l.ID)
	}
	if l.Name != "Gauntlet" || l.Mode != "Private" || l.MemberCount != 42 {
		t.Fatalf("wrong fields: %+v", l)
	}
	if l.OwnerHandle != "owner" {
		t.Fatalf("expected owner handle, got %q", l.OwnerHandle)
	}
}

func TestParseListByRestID_OwnerFromCore(t *testing.T) {
	body := `{
		"data": {
			"list": {
				"id_str": "99",
				"name": "Core Owner",
				"user_results": {
					"result": {
						"core": {"screen_name": "coreowner", "name": "Core Owner Name"}
					}
				}
			}
		}
	}`

	l, err := parseListByRestID([]byte(body))
	if err != nil {
		t.Fatal(err)
	}
	if l.OwnerHandle != "coreowner" {
		t.Fatalf("expected core fallback owner, got %q", l.OwnerHandle)
	}
	if l.Mode != "Public" {
		t.Fatalf("expected default mode Public, got %q", l.Mode)
	}
}

func TestParseListByRestID_NotFound(t *testing.T) {
	_, err := parseListByRestID([]byte(`{"data": {"list": {}}}`))
	if err == nil {
		t.Fatal("expected error for empty list")
	}
}

func TestParseListsTimeline(t *testing.T) {
	body := `{
		"data": {
			"viewer": {
				"list_management_timeline": {
					"timeline": {
						"instructions": [{
							"entries": [
								{
									"entryId": "module-1",
									"content": {
										"items": [
											{"item": {"itemContent": {"list": {"id_str": "1", "name": "Gauntlet", "member_count": 42, "mode": "Private"}}}},
											{"item": {"itemContent": {"somethingElse": true}}},
											{"item": {"itemContent": {"list": {"id_str": "2", "name": "Dev Friends", "member_count": 7, "mode": "Public"}}}}
										]
									}
								},
								{
									"entryId": "list-3",
									"content": {
										"itemContent": {"list": {"id_str": "3", "name": "Reading", "member_count": 12, "mode": "Public"}}
									}
								}
							]
						}]
					}
				}
			}
		}
	}`

	lists, err := parseListsTimeline([]byte(body))
	if err != nil {
		t.Fatal(err)
	}
	if len(lists) != 3 {
		t.Fatalf("expected 3 lists (malformed item skipped), got %d", len(lists))
	}
	if lists[0].Name != "Gauntlet" || lists[1].Name != "Dev Friends" || lists[2].Name != "Reading" {
		t.Fatalf("wrong lists: %+v", lists)
	}
	if lists[0].Mode != "Private" {
		t.Fatalf("expected Private, got %q", lists[0].Mode)
	}
}

func TestEndpointURL(t *testing.T) {
	url, err := EndpointURL("ListMembers")
	if err != nil {
		t.Fatal(err)
	}
	if url != "https://x.com/i/api/graphql/7FPk01hdc1jyzL6Gj8vMZw/ListMembers" {
		t.Fatalf("wrong url: %s", url)
	}

	if _, err := EndpointURL("NoSuchOperation"); err == nil {
		t.Fatal("expected error for unknown operation")
	}
}
