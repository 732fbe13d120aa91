package model

// DataUsage aggregates capacity and object counts across every disk in the
// cluster.
type DataUsage struct {
	TotalCapacity     uint64       `json:"totalCapacity"`
	TotalFreeCapacity uint64       `json:"totalFreeCapacity"`
	TotalUsedCapacity uint64       `json:"totalUsedCapacity"`
	UsagePercentage   float64      `json:"usagePercentage"`
	OnlineDisks       int          `json:"onlineDisks"`
	OfflineDisks      int          `json:"offlineDisks"`
	HealingDisks      int          `json:"healingDisks"`
	PoolsCount        int          `json:"poolsCount"`
	ObjectsCount      uint64       `json:"objectsCount"`
	BucketsCount      uint64       `json:"bucketsCount"`
	DiskDetails       []DiskDetail `json:"diskDetails"`
}

// DiskDetail describes one physical disk reported by the cluster.
type DiskDetail struct {
	Endpoint    string  `json:"endpoint"`
	RootDisk    bool    `json:"rootDisk"`
	Path        string  `json:"path"`
	State       string  `json:"state"`
	UUID        string  `json:"uuid"`
	Major       uint32  `json:"major"`
	Minor       uint32  `json:"minor"`
	TotalSpace  uint64  `json:"totalSpace"`
	UsedSpace   uint64  `json:"usedSpace"`
	AvailSpace  uint64  `json:"availSpace"`
	FSType      string  `json:"fsType"`
	Mount       string  `json:"mount"`
	Pool        int     `json:"pool"`
	Set         int     `json:"set"`
	Utilization float64 `json:"utilization"`
	Healing     bool    `json:"healing"`
}
