package tui

// UI Text Constants
const (
	// Empty-parameter hints
	TextNoResumesSelected = "No resumes selected. Launch with --resumes and --vacancy to compare candidates."
	TextNoOrganization    = "No organization set. Launch with --org to manage skill synonyms."

	// Footer
	TextFooter      = "tab/←→ switch view | r refresh | q quit"
	TextFooterError = "r retry with the same parameters | tab/←→ switch view | q quit"

	// States
	TextLoading = "Loading…"
	TextNoData  = "No data"
)
