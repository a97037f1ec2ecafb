package artifact

// Fixed artifacts referenced by name in code. The values must match the
// tables in assets.
const (
	Galadriel ID = iota + 1
	Elendil
	Thrain
	Carlammas
	Barahir
	Ringil
	Anduril
	Sting
	Grond
	Morgoth
	Terror
	Muramasa
	Robinton
	Xiaolong
	BloodyMoon
	HeavenlyMaiden
	Milim
	Belegennon
	Colluin
	Cammithrim
	Feanor
	Holhenneth
	Thalkettoth
	Gurthang
	Mormegil
	Razorback
	Belthronding
)
