package ports

import (
	"github.com/cristianoliveira/segbar/internal/segment"
	"github.com/stretchr/testify/mock"
)

// MockCollaborator is a mock implementation of Collaborator for testing.
// It uses testify/mock to record calls and configure player state.
//
// Example usage:
//
//	c := new(MockCollaborator)
//	c.On("Player").Return(PlayerState{CurrentTime: 12, PlaybackRate: 1})
//	c.On("Vote", VoteDown, "uuid-1", segment.Category("")).Return()
//	c.On("UpdatePreviewBar").Return()
//
//	c.AssertCalled(t, "Vote", VoteDown, "uuid-1", segment.Category(""))
type MockCollaborator struct {
	mock.Mock
}

// Vote records a vote call.
func (m *MockCollaborator) Vote(direction VoteDirection, uuid string, category segment.Category) {
	m.Called(direction, uuid, category)
}

// Unskip records an unskip call.
//
//	mock.On("Unskip", mock.Anything, mock.Anything).Return()
func (m *MockCollaborator) Unskip(seg *segment.Segment, resumeTime *float64) {
	m.Called(seg, resumeTime)
}

// Reskip records a reskip call.
func (m *MockCollaborator) Reskip(seg *segment.Segment) {
	m.Called(seg)
}

// Player returns a mocked player state.
//
//	mock.On("Player").Return(PlayerState{CurrentTime: 5, PlaybackRate: 2})
func (m *MockCollaborator) Player() PlayerState {
	args := m.Called()
	return args.Get(0).(PlayerState)
}

// UpdatePreviewBar records an overlay refresh.
func (m *MockCollaborator) UpdatePreviewBar() {
	m.Called()
}

// AppendPendingSubmission records an appended submission.
func (m *MockCollaborator) AppendPendingSubmission(seg *segment.Segment) {
	m.Called(seg)
}

// OpenLink records an opened link.
func (m *MockCollaborator) OpenLink(url string) {
	m.Called(url)
}

// DontShowNoticeAgain records the request to stop showing notices.
func (m *MockCollaborator) DontShowNoticeAgain() {
	m.Called()
}
