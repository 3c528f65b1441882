package config

import "github.com/spf13/viper"

// SetDefaults applies the default configuration values
func SetDefaults(v *viper.Viper) {
	v.SetDefault("detection.separator", "==")
	v.SetDefault("detection.min_edge_weight", 0.001)
	v.SetDefault("detection.missing_edge_prop", 0.1)
	v.SetDefault("detection.min_pattern_count", 5)
	v.SetDefault("detection.max_pattern_length", 100)
	v.SetDefault("detection.seed", 0)
	v.SetDefault("detection.close_radius", 0.05)

	v.SetDefault("database.path", "pattrix.db")

	v.SetDefault("logging.json", false)
}
