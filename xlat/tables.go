package xlat

// Tables groups the symbol tables consulted by the bundled decoders. The
// legacy and extended PTP ioctl numberings share the same tables.
type Tables struct {
	PTPExttsFlags    *Table
	PTPPeroutFlags   *Table
	PTPPinFuncs      *Table
	AddressFamilies  *Table
	ARPHardwareTypes *Table
	InterfaceFlags   *Table
}

// Default holds the tables for current Linux ABIs.
var Default = &Tables{
	PTPExttsFlags:    ptpExttsFlags,
	PTPPeroutFlags:   ptpPeroutFlags,
	PTPPinFuncs:      ptpPinFuncs,
	AddressFamilies:  addressFamilies,
	ARPHardwareTypes: arpHardwareTypes,
	InterfaceFlags:   interfaceFlags,
}

var ptpExttsFlags = NewTable("ptp_extts_flags",
	Pair{"PTP_ENABLE_FEATURE", 1 << 0},
	Pair{"PTP_RISING_EDGE", 1 << 1},
	Pair{"PTP_FALLING_EDGE", 1 << 2},
	Pair{"PTP_STRICT_FLAGS", 1 << 3},
)

var ptpPeroutFlags = NewTable("ptp_perout_flags",
	Pair{"PTP_PEROUT_ONE_SHOT", 1 << 0},
	Pair{"PTP_PEROUT_DUTY_CYCLE", 1 << 1},
	Pair{"PTP_PEROUT_PHASE", 1 << 2},
)

var ptpPinFuncs = NewTable("ptp_pin_funcs",
	Pair{"PTP_PF_NONE", 0},
	Pair{"PTP_PF_EXTTS", 1},
	Pair{"PTP_PF_PEROUT", 2},
	Pair{"PTP_PF_PHYSYNC", 3},
)

var addressFamilies = NewTable("addrfams",
	Pair{"AF_UNSPEC", 0},
	Pair{"AF_UNIX", 1},
	Pair{"AF_INET", 2},
	Pair{"AF_AX25", 3},
	Pair{"AF_IPX", 4},
	Pair{"AF_APPLETALK", 5},
	Pair{"AF_NETROM", 6},
	Pair{"AF_BRIDGE", 7},
	Pair{"AF_ATMPVC", 8},
	Pair{"AF_X25", 9},
	Pair{"AF_INET6", 10},
	Pair{"AF_ROSE", 11},
	Pair{"AF_DECnet", 12},
	Pair{"AF_NETBEUI", 13},
	Pair{"AF_SECURITY", 14},
	Pair{"AF_KEY", 15},
	Pair{"AF_NETLINK", 16},
	Pair{"AF_PACKET", 17},
	Pair{"AF_ASH", 18},
	Pair{"AF_ECONET", 19},
	Pair{"AF_ATMSVC", 20},
	Pair{"AF_RDS", 21},
	Pair{"AF_SNA", 22},
	Pair{"AF_IRDA", 23},
	Pair{"AF_PPPOX", 24},
	Pair{"AF_WANPIPE", 25},
	Pair{"AF_LLC", 26},
	Pair{"AF_IB", 27},
	Pair{"AF_MPLS", 28},
	Pair{"AF_CAN", 29},
	Pair{"AF_TIPC", 30},
	Pair{"AF_BLUETOOTH", 31},
	Pair{"AF_IUCV", 32},
	Pair{"AF_RXRPC", 33},
	Pair{"AF_ISDN", 34},
	Pair{"AF_PHONET", 35},
	Pair{"AF_IEEE802154", 36},
	Pair{"AF_CAIF", 37},
	Pair{"AF_ALG", 38},
	Pair{"AF_NFC", 39},
	Pair{"AF_VSOCK", 40},
	Pair{"AF_KCM", 41},
	Pair{"AF_QIPCRTR", 42},
	Pair{"AF_SMC", 43},
	Pair{"AF_XDP", 44},
	Pair{"AF_MCTP", 45},
)

var arpHardwareTypes = NewTable("arp_hardware_types",
	Pair{"ARPHRD_NETROM", 0},
	Pair{"ARPHRD_ETHER", 1},
	Pair{"ARPHRD_EETHER", 2},
	Pair{"ARPHRD_AX25", 3},
	Pair{"ARPHRD_PRONET", 4},
	Pair{"ARPHRD_CHAOS", 5},
	Pair{"ARPHRD_IEEE802", 6},
	Pair{"ARPHRD_ARCNET", 7},
	Pair{"ARPHRD_APPLETLK", 8},
	Pair{"ARPHRD_DLCI", 15},
	Pair{"ARPHRD_ATM", 19},
	Pair{"ARPHRD_METRICOM", 23},
	Pair{"ARPHRD_IEEE1394", 24},
	Pair{"ARPHRD_EUI64", 27},
	Pair{"ARPHRD_INFINIBAND", 32},
	Pair{"ARPHRD_SLIP", 256},
	Pair{"ARPHRD_CSLIP", 257},
	Pair{"ARPHRD_SLIP6", 258},
	Pair{"ARPHRD_CSLIP6", 259},
	Pair{"ARPHRD_RSRVD", 260},
	Pair{"ARPHRD_ADAPT", 264},
	Pair{"ARPHRD_ROSE", 270},
	Pair{"ARPHRD_X25", 271},
	Pair{"ARPHRD_HWX25", 272},
	Pair{"ARPHRD_CAN", 280},
	Pair{"ARPHRD_MCTP", 290},
	Pair{"ARPHRD_PPP", 512},
	Pair{"ARPHRD_CISCO", 513},
	Pair{"ARPHRD_LAPB", 516},
	Pair{"ARPHRD_DDCMP", 517},
	Pair{"ARPHRD_RAWHDLC", 518},
	Pair{"ARPHRD_RAWIP", 519},
	Pair{"ARPHRD_TUNNEL", 768},
	Pair{"ARPHRD_TUNNEL6", 769},
	Pair{"ARPHRD_FRAD", 770},
	Pair{"ARPHRD_SKIP", 771},
	Pair{"ARPHRD_LOOPBACK", 772},
	Pair{"ARPHRD_LOCALTLK", 773},
	Pair{"ARPHRD_FDDI", 774},
	Pair{"ARPHRD_BIF", 775},
	Pair{"ARPHRD_SIT", 776},
	Pair{"ARPHRD_IPDDP", 777},
	Pair{"ARPHRD_IPGRE", 778},
	Pair{"ARPHRD_PIMREG", 779},
	Pair{"ARPHRD_HIPPI", 780},
	Pair{"ARPHRD_ASH", 781},
	Pair{"ARPHRD_ECONET", 782},
	Pair{"ARPHRD_IRDA", 783},
	Pair{"ARPHRD_FCPP", 784},
	Pair{"ARPHRD_FCAL", 785},
	Pair{"ARPHRD_FCPL", 786},
	Pair{"ARPHRD_FCFABRIC", 787},
	Pair{"ARPHRD_IEEE802_TR", 800},
	Pair{"ARPHRD_IEEE80211", 801},
	Pair{"ARPHRD_IEEE80211_PRISM", 802},
	Pair{"ARPHRD_IEEE80211_RADIOTAP", 803},
	Pair{"ARPHRD_IEEE802154", 804},
	Pair{"ARPHRD_IEEE802154_MONITOR", 805},
	Pair{"ARPHRD_PHONET", 820},
	Pair{"ARPHRD_PHONET_PIPE", 821},
	Pair{"ARPHRD_CAIF", 822},
	Pair{"ARPHRD_IP6GRE", 823},
	Pair{"ARPHRD_NETLINK", 824},
	Pair{"ARPHRD_6LOWPAN", 825},
	Pair{"ARPHRD_VSOCKMON", 826},
	Pair{"ARPHRD_VOID", 0xffff},
	Pair{"ARPHRD_NONE", 0xfffe},
)

var interfaceFlags = NewTable("iffflags",
	Pair{"IFF_UP", 1 << 0},
	Pair{"IFF_BROADCAST", 1 << 1},
	Pair{"IFF_DEBUG", 1 << 2},
	Pair{"IFF_LOOPBACK", 1 << 3},
	Pair{"IFF_POINTOPOINT", 1 << 4},
	Pair{"IFF_NOTRAILERS", 1 << 5},
	Pair{"IFF_RUNNING", 1 << 6},
	Pair{"IFF_NOARP", 1 << 7},
	Pair{"IFF_PROMISC", 1 << 8},
	Pair{"IFF_ALLMULTI", 1 << 9},
	Pair{"IFF_MASTER", 1 << 10},
	Pair{"IFF_SLAVE", 1 << 11},
	Pair{"IFF_MULTICAST", 1 << 12},
	Pair{"IFF_PORTSEL", 1 << 13},
	Pair{"IFF_AUTOMEDIA", 1 << 14},
	Pair{"IFF_DYNAMIC", 1 << 15},
	Pair{"IFF_LOWER_UP", 1 << 16},
	Pair{"IFF_DORMANT", 1 << 17},
	Pair{"IFF_ECHO", 1 << 18},
)
