package vo

type UsageState int

const (
	UsageIsOK        UsageState = 0
	UsageIsOverQuota UsageState = 1
)

func (s UsageState) IsOK() bool {
	return s == UsageIsOK
}

func (s UsageState) IsOverQuota() bool {
	return s&UsageIsOverQuota != 0
}

func (s UsageState) String() string {
	if s.IsOverQuota() {
		return "over-quota"
	}
	return "ok"
}
