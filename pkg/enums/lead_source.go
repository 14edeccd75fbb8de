package enums

// LeadSource records which channel produced a lead. Sources arrive as free
// text from the intake forms; DefaultLeadSource is the catch-all bucket used
// when a record carries none.
type LeadSource string

const (
	LeadSourceWhatsApp  LeadSource = "WHATSAPP"
	LeadSourceFacebook  LeadSource = "FACEBOOK"
	LeadSourceInstagram LeadSource = "INSTAGRAM"
	LeadSourceTikTok    LeadSource = "TIKTOK"
	LeadSourceReferral  LeadSource = "REFERRAL"
	LeadSourceOther     LeadSource = "LAIN-LAIN"
)

// DefaultLeadSource is the "other" bucket.
const DefaultLeadSource = LeadSourceOther

// String implements fmt.Stringer.
func (l LeadSource) String() string {
	return string(l)
}
