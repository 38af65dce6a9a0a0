package models

import "strings"

// Parse helpers normalize boundary input once so the rest of the code only
// ever sees the closed enum values.

func ParseJobStatus(raw string) (JobStatus, bool) {
	switch JobStatus(strings.ToUpper(strings.TrimSpace(raw))) {
	case JobDraft:
		return JobDraft, true
	case JobPending:
		return JobPending, true
	case JobRejected:
		return JobRejected, true
	case JobPublished:
		return JobPublished, true
	case JobClosed:
		return JobClosed, true
	default:
		return "", false
	}
}

func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	switch ApplicationStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case ApplicationSubmitted:
		return ApplicationSubmitted, true
	case ApplicationReviewing:
		return ApplicationReviewing, true
	case ApplicationAccepted:
		return ApplicationAccepted, true
	case ApplicationRejected:
		return ApplicationRejected, true
	default:
		return "", false
	}
}

func ParseInterviewStatus(raw string) (InterviewStatus, bool) {
	switch InterviewStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case InterviewPending:
		return InterviewPending, true
	case InterviewConfirmed:
		return InterviewConfirmed, true
	case InterviewCompleted:
		return InterviewCompleted, true
	case InterviewCanceled:
		return InterviewCanceled, true
	default:
		return "", false
	}
}

func ParseInterviewMethod(raw string) (InterviewMethod, bool) {
	switch InterviewMethod(strings.ToLower(strings.TrimSpace(raw))) {
	case MethodRemoteVideo:
		return MethodRemoteVideo, true
	case MethodOnSite:
		return MethodOnSite, true
	default:
		return "", false
	}
}

func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleCandidate:
		return RoleCandidate, true
	case RoleHR:
		return RoleHR, true
	case RoleTPNS:
		return RoleTPNS, true
	default:
		return "", false
	}
}

// IsEmployerRole reports whether the role belongs to staff rather than an
// applicant.
func (r Role) IsEmployerRole() bool {
	return r == RoleHR || r == RoleTPNS
}
