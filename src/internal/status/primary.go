package status

// PrimaryStatus is the API representation of the primary process. The
// primary does not report statistics yet, so it is always empty.
type PrimaryStatus struct{}

// ConvertPrimary ignores the primary's reply and returns an empty status.
func ConvertPrimary(any) PrimaryStatus {
	return PrimaryStatus{}
}
