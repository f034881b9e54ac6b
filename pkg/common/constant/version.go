package constant

import "fmt"

type Version struct {
	Major int64
	Minor int64
	Patch int64
}

func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var VERSION = Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
}
