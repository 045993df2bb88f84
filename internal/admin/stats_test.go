package admin

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prezumi-backend/internal/coverletters"
	"prezumi-backend/internal/resumes"
)

func resumeAt(user string, created time.Time) resumes.Resume {
	return resumes.Resume{
		ID:        fmt.Sprintf("r-%s-%d", user, created.UnixNano()),
		UserID:    user,
		Title:     user + " Resume",
		CreatedAt: created,
	}
}

func letterAt(user string, created time.Time) coverletters.CoverLetter {
	return coverletters.CoverLetter{
		ID:        fmt.Sprintf("l-%s-%d", user, created.UnixNano()),
		UserID:    user,
		Title:     user + " Letter",
		CreatedAt: created,
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, time.August, 31, 15, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)

	rs := []resumes.Resume{
		resumeAt("alice", now),
		resumeAt("alice", yesterday),
		resumeAt("bob", yesterday),
	}
	ls := []coverletters.CoverLetter{
		letterAt("carol", now),
		letterAt("dave", yesterday),
	}

	stats := ComputeStats(rs, ls, now)
	assert.Equal(t, 4, stats.TotalUsers, "distinct users across both document types")
	assert.Equal(t, 3, stats.TotalResumes)
	assert.Equal(t, 2, stats.TotalCoverLetters)
	assert.Equal(t, 2, stats.TodayActivity)
}

func TestPerUserCounts(t *testing.T) {
	now := time.Now()
	rs := []resumes.Resume{
		resumeAt("alice", now),
		resumeAt("alice", now.Add(-time.Hour)),
		resumeAt("bob", now),
	}
	ls := []coverletters.CoverLetter{
		letterAt("alice", now),
		letterAt("carol", now),
	}

	counts := PerUserCounts(rs, ls)
	require.Len(t, counts, 3)
	assert.Equal(t, UserCounts{Resumes: 2, CoverLetters: 1}, counts["alice"])
	assert.Equal(t, UserCounts{Resumes: 1}, counts["bob"])
	assert.Equal(t, UserCounts{CoverLetters: 1}, counts["carol"])
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, nil, time.Now())
	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.TodayActivity)
}

func TestRecentFeedMergesAndCaps(t *testing.T) {
	base := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	// Newest-first inputs, as the repos return them.
	var rs []resumes.Resume
	var ls []coverletters.CoverLetter
	for i := 0; i < 8; i++ {
		rs = append(rs, resumeAt("u1", base.Add(-time.Duration(i)*time.Hour)))
		ls = append(ls, letterAt("u2", base.Add(-time.Duration(i)*time.Hour-30*time.Minute)))
	}

	feed := RecentFeed(rs, ls)
	require.Len(t, feed, 10, "five of each type")

	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].CreatedAt.After(feed[i-1].CreatedAt), "feed must be newest first")
	}

	// Resumes and letters interleave by timestamp.
	assert.Equal(t, "resume", feed[0].Type)
	assert.Equal(t, "cover_letter", feed[1].Type)
}

func TestRecentFeedFewDocuments(t *testing.T) {
	base := time.Now()
	feed := RecentFeed(
		[]resumes.Resume{resumeAt("u1", base)},
		[]coverletters.CoverLetter{letterAt("u2", base.Add(-time.Minute))},
	)
	require.Len(t, feed, 2)
	assert.Equal(t, "resume", feed[0].Type)
}
