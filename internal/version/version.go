package version

// Version is the addon version reported in the manifest and traces.
const Version = "1.1.28"
