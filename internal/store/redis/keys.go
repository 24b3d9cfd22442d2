package redis

// Record kinds. Each kind exclusively owns its key namespace: records live
// under "<kind>:<id>" and the enumeration index under "<kind>:index".
const (
	KindSermon    = "sermon"
	KindResource  = "resource"
	KindEvent     = "event"
	KindVolunteer = "volunteer"
)

// Singleton keys (no id, no index).
const (
	KeyHomepageEvent = "homepage-event"
	KeyLiveStream    = "live_stream_settings"
	KeyAdminPassword = "admin_password"
)

const indexSuffix = ":index"

// RecordKey returns the storage key for one record of a kind.
func RecordKey(kind, id string) string {
	return kind + ":" + id
}

// IndexKey returns the key of the id list used to enumerate a kind.
func IndexKey(kind string) string {
	return kind + indexSuffix
}
