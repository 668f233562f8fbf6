package store

import (
	"sync"
	"time"

	"github.com/minerahub/dashboard/backend/internal/models"
)

// Overlay is an append-only log of local additions layered over a Snapshot.
// Nothing written here reaches the Snapshot and everything is lost on restart.
type Overlay struct {
	mu sync.RWMutex

	now func() time.Time

	posts    []models.Post
	replies  []models.Reply
	messages []models.Message
	cases    []models.SocialCase
	reports  []models.MappedReport
	read     map[pairKey]time.Time

	nextPostID    uint
	nextReplyID   uint
	nextMessageID uint
	nextCaseID    uint
	nextReportID  uint
}

type pairKey struct {
	reader  uint
	partner uint
}

// NewOverlay creates an empty overlay whose ids continue after the snapshot's highest ids.
func NewOverlay(base *Snapshot) *Overlay {
	o := &Overlay{
		now:  time.Now,
		read: make(map[pairKey]time.Time),
	}
	for _, p := range base.Posts {
		o.nextPostID = max(o.nextPostID, p.ID)
	}
	for _, r := range base.Replies {
		o.nextReplyID = max(o.nextReplyID, r.ID)
	}
	for _, m := range base.Messages {
		o.nextMessageID = max(o.nextMessageID, m.ID)
	}
	for _, c := range base.SocialCases {
		o.nextCaseID = max(o.nextCaseID, c.ID)
	}
	for _, r := range base.CommunityReports {
		o.nextReportID = max(o.nextReportID, r.ID)
	}
	return o
}

// WithClock replaces the timestamp source. Used by tests.
func (o *Overlay) WithClock(now func() time.Time) *Overlay {
	o.now = now
	return o
}

// AddPost appends a post, assigning its id and creation time.
func (o *Overlay) AddPost(p models.Post) models.Post {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextPostID++
	p.ID = o.nextPostID
	p.CreatedAt = o.now()
	o.posts = append(o.posts, p)
	return p
}

// Posts returns a copy of the local posts.
func (o *Overlay) Posts() []models.Post {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]models.Post(nil), o.posts...)
}

// Post returns a local post by id.
func (o *Overlay) Post(id uint) (models.Post, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	for _, p := range o.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// AddReply appends a reply, assigning its id and creation time.
func (o *Overlay) AddReply(r models.Reply) models.Reply {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextReplyID++
	r.ID = o.nextReplyID
	r.CreatedAt = o.now()
	o.replies = append(o.replies, r)
	return r
}

// Replies returns the local replies to a post.
func (o *Overlay) Replies(postID uint) []models.Reply {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var out []models.Reply
	for _, r := range o.replies {
		if r.PostID == postID {
			out = append(out, r)
		}
	}
	return out
}

// AddMessage appends a message. It starts unread for its recipient.
func (o *Overlay) AddMessage(m models.Message) models.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextMessageID++
	m.ID = o.nextMessageID
	m.CreatedAt = o.now()
	m.IsRead = false
	o.messages = append(o.messages, m)
	return m
}

// Messages returns a copy of the local messages.
func (o *Overlay) Messages() []models.Message {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]models.Message(nil), o.messages...)
}

// MarkRead records that reader has just opened the conversation with partner.
func (o *Overlay) MarkRead(reader, partner uint) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.read[pairKey{reader, partner}] = o.now()
}

// ReadAt returns when reader last opened the conversation with partner.
func (o *Overlay) ReadAt(reader, partner uint) (time.Time, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	t, ok := o.read[pairKey{reader, partner}]
	return t, ok
}

// AddSocialCase appends a social case, assigning its id and creation time.
func (o *Overlay) AddSocialCase(c models.SocialCase) models.SocialCase {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextCaseID++
	c.ID = o.nextCaseID
	c.CreatedAt = o.now()
	o.cases = append(o.cases, c)
	return c
}

// SocialCases returns the local cases of a company.
func (o *Overlay) SocialCases(companyID uint) []models.SocialCase {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var out []models.SocialCase
	for _, c := range o.cases {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out
}

// AddReport appends an already placed report with status pending.
func (o *Overlay) AddReport(r models.MappedReport) models.MappedReport {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextReportID++
	r.ID = o.nextReportID
	r.Status = models.ReportStatusPending
	r.CreatedAt = o.now()
	o.reports = append(o.reports, r)
	return r
}

// Reports returns a copy of the local reports.
func (o *Overlay) Reports() []models.MappedReport {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]models.MappedReport(nil), o.reports...)
}
