package admin

import (
	"sort"
	"time"

	"prezumi-backend/internal/coverletters"
	"prezumi-backend/internal/resumes"
)

// Stats is the aggregate view shown on the admin dashboard.
type Stats struct {
	TotalUsers        int `json:"totalUsers"`
	TotalResumes      int `json:"totalResumes"`
	TotalCoverLetters int `json:"totalCoverLetters"`
	TodayActivity     int `json:"todayActivity"`
}

// UserCounts is the per-user document breakdown.
type UserCounts struct {
	Resumes      int `json:"resumes"`
	CoverLetters int `json:"coverLetters"`
}

// FeedItem is one entry in the recent-activity feed.
type FeedItem struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	feedPerSource = 5
	feedCap       = 10
)

// ComputeStats aggregates counts over the given documents. Distinct user ids
// are counted across both document types; today's activity counts documents
// created on the calendar day of now, in now's location.
func ComputeStats(rs []resumes.Resume, ls []coverletters.CoverLetter, now time.Time) Stats {
	users := make(map[string]struct{})
	today := 0
	y, m, d := now.Date()

	sameDay := func(t time.Time) bool {
		ty, tm, td := t.In(now.Location()).Date()
		return ty == y && tm == m && td == d
	}

	for _, r := range rs {
		users[r.UserID] = struct{}{}
		if sameDay(r.CreatedAt) {
			today++
		}
	}
	for _, l := range ls {
		users[l.UserID] = struct{}{}
		if sameDay(l.CreatedAt) {
			today++
		}
	}

	return Stats{
		TotalUsers:        len(users),
		TotalResumes:      len(rs),
		TotalCoverLetters: len(ls),
		TodayActivity:     today,
	}
}

// PerUserCounts breaks document counts down by owning user.
func PerUserCounts(rs []resumes.Resume, ls []coverletters.CoverLetter) map[string]UserCounts {
	out := make(map[string]UserCounts)
	for _, r := range rs {
		c := out[r.UserID]
		c.Resumes++
		out[r.UserID] = c
	}
	for _, l := range ls {
		c := out[l.UserID]
		c.CoverLetters++
		out[l.UserID] = c
	}
	return out
}

// RecentFeed merges the newest documents of both types into a single feed:
// up to five of each, sorted newest first, capped at ten entries.
func RecentFeed(rs []resumes.Resume, ls []coverletters.CoverLetter) []FeedItem {
	feed := make([]FeedItem, 0, feedCap)

	for i, r := range rs {
		if i >= feedPerSource {
			break
		}
		feed = append(feed, FeedItem{
			Type:      "resume",
			ID:        r.ID,
			UserID:    r.UserID,
			Title:     r.Title,
			CreatedAt: r.CreatedAt,
		})
	}
	for i, l := range ls {
		if i >= feedPerSource {
			break
		}
		feed = append(feed, FeedItem{
			Type:      "cover_letter",
			ID:        l.ID,
			UserID:    l.UserID,
			Title:     l.Title,
			CreatedAt: l.CreatedAt,
		})
	}

	sort.Slice(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})
	if len(feed) > feedCap {
		feed = feed[:feedCap]
	}
	return feed
}
