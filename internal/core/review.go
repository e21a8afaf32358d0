package core

// ReviewRequest is a single source file submitted for review.
type ReviewRequest struct {
	Branch   string `json:"branch" yaml:"branch"`
	FilePath string `json:"file_path" yaml:"file_path"`
	Code     string `json:"code" yaml:"code"`
}

// ReviewResponse carries the assistant's review of one file. Code holds the
// review text, not the submitted source.
type ReviewResponse struct {
	Branch   string `json:"branch" yaml:"branch"`
	FilePath string `json:"file_path" yaml:"file_path"`
	Code     string `json:"code" yaml:"code"`
}

// ReviewResult is one entry of a batch review. Exactly one of Code and Error is set.
type ReviewResult struct {
	Branch   string `json:"branch" yaml:"branch"`
	FilePath string `json:"file_path" yaml:"file_path"`
	Code     string `json:"code,omitempty" yaml:"code,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the item could not be reviewed.
func (r ReviewResult) Failed() bool {
	return r.Error != ""
}

// SampleCodeRequest asks the sample-code assistant to rework Code according to Comment.
type SampleCodeRequest struct {
	Code    string `json:"code" yaml:"code"`
	Comment string `json:"comment" yaml:"comment"`
}

// SampleCodeResponse holds the generated sample code.
type SampleCodeResponse struct {
	SampleCode string `json:"sample_code" yaml:"sample_code"`
}
