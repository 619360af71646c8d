package domain

type RefType string

const (
	RefTypeBranch   RefType = "branch"
	RefTypeTag      RefType = "tag"
	RefTypeDetached RefType = "detached"
)

// GitRef is the resolved state of the working copy (or of the CI checkout)
// a pipeline run was started from.
type GitRef struct {
	Type RefType `json:"type"`
	Name string  `json:"name"`
	SHA  string  `json:"sha"`
} // @name GitRef

// ShortSHA matches the abbreviation git rev-parse --short uses by default.
func (r GitRef) ShortSHA() string {
	if len(r.SHA) < 7 {
		return r.SHA
	}
	return r.SHA[:7]
}

func (r GitRef) IsTag() bool {
	return r.Type == RefTypeTag
}

func (r GitRef) IsBranch() bool {
	return r.Type == RefTypeBranch
}
