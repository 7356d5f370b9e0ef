package domain

import "strconv"

// Pages a client is sent to after an operation.
const (
	RedirectLanding            = "/"
	RedirectCandidateRegister  = "/candidate/register"
	RedirectCompanyRegister    = "/company/register"
	RedirectCandidateLogin     = "/candidate/login"
	RedirectCompanyLogin       = "/company/login"
	RedirectCandidateDashboard = "/candidate/dashboard"
	RedirectCandidateProfile   = "/candidate/profile"
	RedirectCompanyDashboard   = "/company/dashboard"
	RedirectCompanyJobs        = "/company/jobs"
)

func JobDetailPath(id int64) string {
	return "/jobs/" + strconv.FormatInt(id, 10)
}

// LoginPath returns the login page for role.
func LoginPath(role Role) string {
	if role == RoleCompany {
		return RedirectCompanyLogin
	}
	return RedirectCandidateLogin
}

// DashboardPath returns the landing page after login for role.
func DashboardPath(role Role) string {
	if role == RoleCompany {
		return RedirectCompanyDashboard
	}
	return RedirectCandidateDashboard
}
