package actor

// Kind tags every enemy and section prop with its concrete behavior.
type Kind int

const (
	KindUnknown Kind = iota
	KindWheeliam
	KindSprinny
	KindFureel
	KindYaw
	KindYawnster
	KindEkips
	KindFaller
	KindTurner
	KindChamal
	KindElectong
	KindChrazer
	KindRobort
	KindShep
	KindFlep
	KindJellep
	KindSnep
	KindVamep
	KindArmep
	KindOwlep
	KindZep
	KindButterflep
	KindSahiss
	KindForsby
	KindMorsby
	KindStilty
	KindMantul
	KindLambul
	KindIcel
	KindIgnel
	KindWarclops
	KindNecrul
	KindUlor
	KindUmbrex
	KindQuartin
	KindQuartinShield
	KindXylophob
	KindBardin
	KindDynamike
	KindHooman
	KindGargoil
	KindZirkn
	KindFrock
	KindPantan
	KindKraklet
	KindPikey
	KindGars
	KindZingz
	KindGlobb
	KindBombark
	KindVamdark
	KindLuminark
	KindDrepz
	KindBombinfant
	KindBombarcher
	KindBombnight
	KindBombaladin
	KindBomblancer
	KindGaxlon
	KindScripted

	// props
	KindGunPowder
	KindWater
	KindStalactite
	KindStalactiteGenerator
	KindPoisonGas
	KindLightning
	KindVortex
	KindMovingWall
	KindBox
	KindFixedSpikes
)

var kindNames = [...]string{
	KindUnknown:             "Unknown",
	KindWheeliam:            "Wheeliam",
	KindSprinny:             "Sprinny",
	KindFureel:              "Fureel",
	KindYaw:                 "Yaw",
	KindYawnster:            "Yawnster",
	KindEkips:               "Ekips",
	KindFaller:              "Faller",
	KindTurner:              "Turner",
	KindChamal:              "Chamal",
	KindElectong:            "Electong",
	KindChrazer:             "Chrazer",
	KindRobort:              "Robort",
	KindShep:                "Shep",
	KindFlep:                "Flep",
	KindJellep:              "Jellep",
	KindSnep:                "Snep",
	KindVamep:               "Vamep",
	KindArmep:               "Armep",
	KindOwlep:               "Owlep",
	KindZep:                 "Zep",
	KindButterflep:          "Butterflep",
	KindSahiss:              "Sahiss",
	KindForsby:              "Forsby",
	KindMorsby:              "Morsby",
	KindStilty:              "Stilty",
	KindMantul:              "Mantul",
	KindLambul:              "Lambul",
	KindIcel:                "Icel",
	KindIgnel:               "Ignel",
	KindWarclops:            "Warclops",
	KindNecrul:              "Necrul",
	KindUlor:                "Ulor",
	KindUmbrex:              "Umbrex",
	KindQuartin:             "Quartin",
	KindQuartinShield:       "QuartinShield",
	KindXylophob:            "Xylophob",
	KindBardin:              "Bardin",
	KindDynamike:            "Dynamike",
	KindHooman:              "Hooman",
	KindGargoil:             "Gargoil",
	KindZirkn:               "Zirkn",
	KindFrock:               "Frock",
	KindPantan:              "Pantan",
	KindKraklet:             "Kraklet",
	KindPikey:               "Pikey",
	KindGars:                "Gars",
	KindZingz:               "Zingz",
	KindGlobb:               "Globb",
	KindBombark:             "Bombark",
	KindVamdark:             "Vamdark",
	KindLuminark:            "Luminark",
	KindDrepz:               "Drepz",
	KindBombinfant:          "Bombinfant",
	KindBombarcher:          "Bombarcher",
	KindBombnight:           "Bombnight",
	KindBombaladin:          "Bombaladin",
	KindBomblancer:          "Bomblancer",
	KindGaxlon:              "Gaxlon",
	KindScripted:            "Scripted",
	KindGunPowder:           "GunPowder",
	KindWater:               "Water",
	KindStalactite:          "Stalactite",
	KindStalactiteGenerator: "StalactiteGenerator",
	KindPoisonGas:           "PoisonGas",
	KindLightning:           "Lightning",
	KindVortex:              "Vortex",
	KindMovingWall:          "MovingWall",
	KindBox:                 "Box",
	KindFixedSpikes:         "FixedSpikes",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ParseKind maps an element type name to its Kind.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if i > 0 && n == name {
			return Kind(i), true
		}
	}
	return KindUnknown, false
}
