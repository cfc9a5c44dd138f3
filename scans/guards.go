package scans

// Shape guards for server responses. A response that decodes but fails its
// guard is a contract failure: a bug signal between client and server, not
// something the user caused. The operations accept any predicate of the
// right type; these are the defaults.

// ValidScan reports whether a detail response carries a usable scan.
func ValidScan(s *Scan) bool {
	if s == nil || s.ID <= 0 || s.TargetURL == "" {
		return false
	}
	switch s.Status {
	case StatusVulnerable, StatusSafe, StatusError:
	default:
		return false
	}
	switch s.TestType {
	case TestRateLimit, TestAuth, TestSQLI, TestIDOR:
	default:
		return false
	}
	return true
}

// ValidScanList reports whether a list response is well-formed. Total may
// exceed the page length but never undercount it.
func ValidScanList(l *ScanList) bool {
	if l == nil || l.Total < len(l.Scans) {
		return false
	}
	for i := range l.Scans {
		if !ValidScan(&l.Scans[i]) {
			return false
		}
	}
	return true
}
