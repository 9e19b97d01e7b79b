package cmd

import (
	"time"

	"github.com/foomo/contentadmin/pkg/handler"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func logLevelFlag(v *viper.Viper) string {
	return v.GetString("log.level")
}

func addLogLevelFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-level", "info", "log level")
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindEnv("log.level", "LOG_LEVEL")
}

func logFormatFlag(v *viper.Viper) string {
	return v.GetString("log.format")
}

func addLogFormatFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-format", "json", "log format")
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = v.BindEnv("log.format", "LOG_FORMAT")
}

func addressFlag(v *viper.Viper) string {
	return v.GetString("address")
}

func addAddressFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("address", ":8080", "Address to bind to (host:port)")
	_ = v.BindPFlag("address", flags.Lookup("address"))
	_ = v.BindEnv("address", "CONTENT_ADMIN_ADDRESS")
}

func basePathFlag(v *viper.Viper) string {
	return v.GetString("base_path")
}

func addBasePathFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("base-path", "/contentadmin", "Base path to export the admin api on")
	_ = v.BindPFlag("base_path", flags.Lookup("base-path"))
	_ = v.BindEnv("base_path", "CONTENT_ADMIN_BASE_PATH")
}

func loginURLFlag(v *viper.Viper) string {
	return v.GetString("login_url")
}

func addLoginURLFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("login-url", handler.DefaultLoginURL, "Where requests without admin session are redirected to")
	_ = v.BindPFlag("login_url", flags.Lookup("login-url"))
	_ = v.BindEnv("login_url", "CONTENT_ADMIN_LOGIN_URL")
}

func corsAllowedOriginsFlag(v *viper.Viper) []string {
	return v.GetStringSlice("cors.allowed_origins")
}

func addCORSAllowedOriginsFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.StringSlice("cors-allowed-origins", nil, "Origins the browser console may call the api from")
	_ = v.BindPFlag("cors.allowed_origins", flags.Lookup("cors-allowed-origins"))
	_ = v.BindEnv("cors.allowed_origins", "CONTENT_ADMIN_CORS_ALLOWED_ORIGINS")
}

func sourceTypeFlag(v *viper.Viper) string {
	return v.GetString("source.type")
}

func addSourceTypeFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("source-type", sourceTypeHTTP, "Where collections are loaded from (http, filesystem, blob)")
	_ = v.BindPFlag("source.type", flags.Lookup("source-type"))
	_ = v.BindEnv("source.type", "CONTENT_ADMIN_SOURCE_TYPE")
}

func sourceURLFlag(v *viper.Viper) string {
	return v.GetString("source.url")
}

func addSourceURLFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("source-url", "", "Base url of the site data directory, e.g. https://example.com/data")
	_ = v.BindPFlag("source.url", flags.Lookup("source-url"))
	_ = v.BindEnv("source.url", "CONTENT_ADMIN_SOURCE_URL")
}

func sourceDirFlag(v *viper.Viper) string {
	return v.GetString("source.dir")
}

func addSourceDirFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("source-dir", "data", "Local site data directory")
	_ = v.BindPFlag("source.dir", flags.Lookup("source-dir"))
	_ = v.BindEnv("source.dir", "CONTENT_ADMIN_SOURCE_DIR")
}

func sourceBlobBucketFlag(v *viper.Viper) string {
	return v.GetString("source.blob.bucket")
}

func addSourceBlobBucketFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("source-blob-bucket", "", "Bucket url holding the site data (gs://, s3://, azblob://)")
	_ = v.BindPFlag("source.blob.bucket", flags.Lookup("source-blob-bucket"))
	_ = v.BindEnv("source.blob.bucket", "CONTENT_ADMIN_SOURCE_BLOB_BUCKET")
}

func sourceBlobPrefixFlag(v *viper.Viper) string {
	return v.GetString("source.blob.prefix")
}

func addSourceBlobPrefixFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("source-blob-prefix", "", "Object prefix of the site data inside the bucket")
	_ = v.BindPFlag("source.blob.prefix", flags.Lookup("source-blob-prefix"))
	_ = v.BindEnv("source.blob.prefix", "CONTENT_ADMIN_SOURCE_BLOB_PREFIX")
}

func outputDirFlag(v *viper.Viper) string {
	return v.GetString("output.dir")
}

func addOutputDirFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("output-dir", "export", "Directory the exported documents are written to")
	_ = v.BindPFlag("output.dir", flags.Lookup("output-dir"))
	_ = v.BindEnv("output.dir", "CONTENT_ADMIN_OUTPUT_DIR")
}

func outputBlobBucketFlag(v *viper.Viper) string {
	return v.GetString("output.blob.bucket")
}

func addOutputBlobBucketFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("output-blob-bucket", "", "Bucket url the exported documents are written to, overrides output-dir")
	_ = v.BindPFlag("output.blob.bucket", flags.Lookup("output-blob-bucket"))
	_ = v.BindEnv("output.blob.bucket", "CONTENT_ADMIN_OUTPUT_BLOB_BUCKET")
}

func outputBlobPrefixFlag(v *viper.Viper) string {
	return v.GetString("output.blob.prefix")
}

func addOutputBlobPrefixFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("output-blob-prefix", "", "Object prefix of the exported documents")
	_ = v.BindPFlag("output.blob.prefix", flags.Lookup("output-blob-prefix"))
	_ = v.BindEnv("output.blob.prefix", "CONTENT_ADMIN_OUTPUT_BLOB_PREFIX")
}

func repositoryTimeoutFlag(v *viper.Viper) time.Duration {
	return v.GetDuration("repository.timeout")
}

func addRepositoryTimeoutFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Duration("repository-timeout", 10*time.Second, "Timeout for fetching a single collection or calling a server")
	_ = v.BindPFlag("repository.timeout", flags.Lookup("repository-timeout"))
	_ = v.BindEnv("repository.timeout", "CONTENT_ADMIN_REPOSITORY_TIMEOUT")
}

func serviceHealthzEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.healthz.enabled")
}

func addServiceHealthzEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-healthz-enabled", false, "Enable healthz service")
	_ = v.BindPFlag("service.healthz.enabled", flags.Lookup("service-healthz-enabled"))
}

func servicePrometheusEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.prometheus.enabled")
}

func addServicePrometheusEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-prometheus-enabled", false, "Enable prometheus service")
	_ = v.BindPFlag("service.prometheus.enabled", flags.Lookup("service-prometheus-enabled"))
}

func servicePProfEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.pprof.enabled")
}

func addServicePProfEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-pprof-enabled", false, "Enable pprof service")
	_ = v.BindPFlag("service.pprof.enabled", flags.Lookup("service-pprof-enabled"))
}

func otelEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("otel.enabled")
}

func addOtelEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("otel-enabled", false, "Enable otel service")
	_ = v.BindPFlag("otel.enabled", flags.Lookup("otel-enabled"))
	_ = v.BindEnv("otel.enabled", "OTEL_ENABLED")
}

func addSourceFlags(flags *pflag.FlagSet, v *viper.Viper) {
	addSourceTypeFlag(flags, v)
	addSourceURLFlag(flags, v)
	addSourceDirFlag(flags, v)
	addSourceBlobBucketFlag(flags, v)
	addSourceBlobPrefixFlag(flags, v)
	addRepositoryTimeoutFlag(flags, v)
}

func addOutputFlags(flags *pflag.FlagSet, v *viper.Viper) {
	addOutputDirFlag(flags, v)
	addOutputBlobBucketFlag(flags, v)
	addOutputBlobPrefixFlag(flags, v)
}
