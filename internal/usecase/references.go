package usecase

import "strings"

// External references route provider confirmations back to what was paid for.
const (
	orderRefPrefix   = "order:"
	depositRefPrefix = "deposit:"
)

func OrderReference(orderID string) string  { return orderRefPrefix + orderID }
func DepositReference(jobID string) string  { return depositRefPrefix + jobID }
func refundReference(orderID string) string { return "refund:" + orderID }
func bidReference(bidID string) string      { return "bid:" + bidID }

// parseReference splits an external reference into its kind and id.
func parseReference(ref string) (kind, id string) {
	for _, p := range []string{orderRefPrefix, depositRefPrefix} {
		if strings.HasPrefix(ref, p) && len(ref) > len(p) {
			return strings.TrimSuffix(p, ":"), ref[len(p):]
		}
	}
	return "", ""
}
