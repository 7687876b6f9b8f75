package buckets

// Version is the release of the buckets module.
const Version = "0.1.0"
