package pos

import (
	"strings"

	"github.com/MarcGrol/cloverconnect/services/pos/posclient"
)

const cashTenderLabelKey = "com.clover.tender.cash"

// selectTender prefers an external tender, then cash.
func selectTender(tenders []posclient.Tender) (posclient.Tender, bool) {
	for _, t := range tenders {
		if isExternalTender(t) {
			return t, true
		}
	}

	for _, t := range tenders {
		if isCashTender(t) {
			return t, true
		}
	}

	return posclient.Tender{}, false
}

func isExternalTender(t posclient.Tender) bool {
	return strings.Contains(t.LabelKey, "external") ||
		strings.Contains(strings.ToLower(t.Label), "external") ||
		t.Editable
}

func isCashTender(t posclient.Tender) bool {
	return t.LabelKey == cashTenderLabelKey ||
		strings.Contains(strings.ToLower(t.Label), "cash")
}
