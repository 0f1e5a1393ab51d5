package tui

import "github.com/CaptainSeanG/PhxPilotJobs/internal/feed"

type feedLoadedMsg struct {
	result feed.Result
	err    error
}

type openErrMsg struct {
	err error
}
