package repositories

import "time"

// Simulated latency per access-layer call.
const (
	delayUsersGetAll    = 300 * time.Millisecond
	delayUsersGetByID   = 200 * time.Millisecond
	delayUsersGetByRole = 300 * time.Millisecond

	delayPostsGetAll      = 400 * time.Millisecond
	delayPostsGetByID     = 200 * time.Millisecond
	delayPostsGetByUserID = 300 * time.Millisecond
	delayPostsGetByType   = 300 * time.Millisecond
	delayPostsGetReplies  = 250 * time.Millisecond

	delayFollowsGetAll       = 300 * time.Millisecond
	delayFollowsGetFollowers = 250 * time.Millisecond
	delayFollowsGetCompanies = 250 * time.Millisecond

	delayFeedbackGetAll      = 300 * time.Millisecond
	delayFeedbackGetByPostID = 200 * time.Millisecond
	delayFeedbackGetByUserID = 200 * time.Millisecond

	delayMessagesGetAll          = 400 * time.Millisecond
	delayMessagesGetConversation = 300 * time.Millisecond
	delayMessagesGetInbox        = 350 * time.Millisecond

	delaySocialCasesGetAll       = 500 * time.Millisecond
	delaySocialCasesGetByCompany = 300 * time.Millisecond
	delaySocialCasesGetTotal     = 200 * time.Millisecond

	delayReportsGetAll        = 400 * time.Millisecond
	delayReportsGetByID       = 200 * time.Millisecond
	delayReportsGetByUserID   = 300 * time.Millisecond
	delayReportsGetByCategory = 250 * time.Millisecond
	delayReportsGetByZipcode  = 300 * time.Millisecond
)
