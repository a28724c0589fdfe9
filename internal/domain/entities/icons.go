package entities

// IconName is a stable key the frontend resolves to an actual icon asset.
// The set is closed on the server side; anything unrecognized renders as
// IconCube, the generic default.

type IconName string

const (
	IconCube              IconName = "CubeIcon"
	IconShieldCheck       IconName = "ShieldCheckIcon"
	IconBeaker            IconName = "BeakerIcon"
	IconScreenPorch       IconName = "ScreenPorchIcon"
	IconSiding            IconName = "SidingIcon"
	IconFence             IconName = "FenceIcon"
	IconShutter           IconName = "ShutterIcon"
	IconWrenchScrewdriver IconName = "WrenchScrewdriverIcon"
)

// ServiceIconNames lists the icons the admin can assign to a service entry.
var ServiceIconNames = []IconName{
	IconCube,
	IconShieldCheck,
	IconBeaker,
	IconScreenPorch,
	IconSiding,
	IconFence,
	IconShutter,
	IconWrenchScrewdriver,
}

var projectTypeIcons = map[ProjectTypeID]IconName{
	ProjectTypeDeck:      IconCube,
	ProjectTypePoolFence: IconShieldCheck,
	ProjectTypeGutters:   IconBeaker,
}

// IconForProjectType resolves a project type id to its icon. Unknown ids
// (e.g. admin-created types) get the generic cube icon; that is intentional,
// not an error.
func IconForProjectType(id ProjectTypeID) IconName {
	if icon, ok := projectTypeIcons[id]; ok {
		return icon
	}
	return IconCube
}

// KnownIcon reports whether name is part of the closed icon set. Display
// boundaries use this to fall back to IconCube for stale persisted names.
func KnownIcon(name IconName) bool {
	for _, n := range ServiceIconNames {
		if n == name {
			return true
		}
	}
	return false
}
