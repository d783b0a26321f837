package config

import (
	"flag"
)

const (
	defaultAddress       = ":8080"
	defaultShipmentsFile = "shipments.json"
	defaultManifestDir   = "pdfs"
	defaultLogLevel      = "info"
)

type Flags struct {
	address string

	shipmentsFile string
	manifestDir   string
	assetsDir     string
	dbDNS         string
	logLevel      string
}

func (flags *Flags) Init() {
	flag.StringVar(&flags.address, "a", defaultAddress, "Address and port to run server")

	flag.StringVar(&flags.shipmentsFile, "f", defaultShipmentsFile, "shipments JSON file")
	flag.StringVar(&flags.manifestDir, "o", defaultManifestDir, "manifest output directory")
	flag.StringVar(&flags.assetsDir, "i", "", "directory with manifest images overriding the built-in ones")
	flag.StringVar(&flags.dbDNS, "d", "", "db dns, the shipments file is used when empty")
	flag.StringVar(&flags.logLevel, "l", defaultLogLevel, "log level")

	flag.Parse()
}
