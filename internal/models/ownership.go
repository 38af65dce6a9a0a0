package models

// OwnedBy anchors authorization: a posting is owned by the employer who
// created it, an application by the employer owning its job, an interview
// by the employer who scheduled it.

func (j *JobPosting) OwnedBy() uint { return j.EmployerID }

// OwnedBy requires Job to be loaded; repositories always preload it on
// the paths that gate on ownership.
func (a *Application) OwnedBy() uint { return a.Job.EmployerID }

func (i *Interview) OwnedBy() uint { return i.InterviewerID }
