package xlists

import "fmt"

const graphqlBase = "https://x.com/i/api/graphql"

// BearerToken is the X web-app bearer token. It identifies the web client,
// not the user, and is rotated by the service from time to time.
const BearerToken = "AAAAAAAAAAAAAAAAAAAAANRILgAAAAAAnNwIzUejRCOuH5E6I8xnZz4puTs%3D1Zv7ttfk8LF81IUq16cHjhLTvJu4FA33AGWWjCpTnA"

// Endpoint holds the operation ID, name, and per-operation feature flags.
type Endpoint struct {
	ID       string
	Name     string
	Features map[string]any
}

// URL returns the full URL for this endpoint.
func (e Endpoint) URL() string {
	return fmt.Sprintf("%s/%s/%s", graphqlBase, e.ID, e.Name)
}

// EndpointURL returns the URL for a named operation, or an error if unknown.
func EndpointURL(operation string) (string, error) {
	ep, ok := Endpoints[operation]
	if !ok {
		return "", fmt.Errorf("unknown operation: %s", operation)
	}
	return ep.URL(), nil
}

// Endpoints maps operation names to their current GraphQL IDs and feature
// flags. The IDs are versioned server-side; an upstream rotation surfaces as
// HTTP 404s from these operations. ListLatestTweetsTimeline is registered for
// completeness but nothing here calls it.
var Endpoints = map[string]Endpoint{
	"ListMembers":                 {ID: "7FPk01hdc1jyzL6Gj8vMZw", Name: "ListMembers", Features: gqlFeatures()},
	"ListByRestId":                {ID: "Tzkkg-NaBi_y1aAUUb6_eQ", Name: "ListByRestId", Features: gqlFeatures()},
	"ListsManagementPageTimeline": {ID: "FHavhcMS-6NrywtPkWiOHg", Name: "ListsManagementPageTimeline", Features: gqlFeatures()},
	"ListLatestTweetsTimeline":    {ID: "aJxgBm1YveGJCRiWJFx5WA", Name: "ListLatestTweetsTimeline", Features: gqlFeatures()},
}

// gqlFeatures returns the feature flags the list endpoints require. The
// server shapes (or rejects) responses based on this set, so it is sent
// verbatim on every request.
func gqlFeatures() map[string]any {
	return map[string]any{
		"rweb_video_screen_enabled":                                               false,
		"profile_label_improvements_pcf_label_in_post_enabled":                    true,
		"responsive_web_profile_redirect_enabled":                                 false,
		"rweb_tipjar_consumption_enabled":                                         false,
		"verified_phone_label_enabled":                                            false,
		"creator_subscriptions_tweet_preview_api_enabled":                         true,
		"responsive_web_graphql_exclude_directive_enabled":                        true,
		"responsive_web_graphql_skip_user_profile_image_extensions_enabled":       false,
		"responsive_web_graphql_timeline_navigation_enabled":                      true,
		"hidden_profile_subscriptions_enabled":                                    true,
		"profile_foundations_tweet_stats_enabled":                                 true,
		"subscriptions_verification_info_is_identity_verified_enabled":            true,
		"subscriptions_verification_info_verified_since_enabled":                  true,
		"highlights_tweets_tab_ui_enabled":                                        true,
		"c9s_tweet_anatomy_moderator_badge_enabled":                               true,
		"tweet_with_visibility_results_prefer_gql_limited_actions_policy_enabled": true,
		"responsive_web_twitter_article_tweet_consumption_enabled":                true,
		"subscriptions_feature_can_gift_premium":                                  true,
		"responsive_web_home_pinned_timelines_enabled":                            true,
		"long_form_notetweets_consumption_enabled":                                true,
		"responsive_web_media_download_video_enabled":                             true,
	}
}
