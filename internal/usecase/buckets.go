package usecase

import (
	"strings"
	"unicode/utf8"

	"eagles_transportes/internal/domain/entities"
)

const (
	// RegionBucketOther collects origins without a recognizable region code.
	RegionBucketOther = "Other"
	// VehicleBucketNone collects freights without a driver or vehicle type.
	VehicleBucketNone = "NO VEHICLE"
)

// RegionBucket derives the region code of a free-form origin such as
// "São Paulo - SP" or "Curitiba, PR". The text after the last comma or hyphen,
// trimmed and uppercased, is the code when it has 2 or 3 characters. An origin
// without delimiters is used as is only when it is exactly 2 characters long.
//
// Both the dashboard breakdown and the drill-down use this function.
func RegionBucket(origin string) string {
	raw := strings.TrimSpace(origin)
	if i := strings.LastIndexAny(raw, ",-"); i >= 0 {
		code := strings.ToUpper(strings.TrimSpace(raw[i+1:]))
		if n := utf8.RuneCountInString(code); n >= 2 && n <= 3 {
			return code
		}
		return RegionBucketOther
	}
	if utf8.RuneCountInString(raw) == 2 {
		return strings.ToUpper(raw)
	}
	return RegionBucketOther
}

// VehicleBucket returns the trimmed, uppercased vehicle type of the freight's driver.
// A nil driver or an empty vehicle type yields VehicleBucketNone.
func VehicleBucket(driver *entities.Driver) string {
	if driver == nil {
		return VehicleBucketNone
	}
	v := strings.ToUpper(strings.TrimSpace(driver.VehicleType))
	if v == "" {
		return VehicleBucketNone
	}
	return v
}
