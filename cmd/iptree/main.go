// Copyright (c) 2026 Bitvantage
// SPDX-License-Identifier: MIT

// iptree is a small harness around the netaddressing library: it
// loads networks from arguments or a file and prints trees, matches,
// summaries and per-network details.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bitvantage/netaddressing"
)

var (
	buildVersion = "unknown"
	buildDate    = "unknown"

	logLevel     string
	networksFile string
	jsonOutput   bool

	envPrefix = "IPTREE"
	json      = jsoniter.ConfigCompatibleWithStandardLibrary
)

var rootCmd = &cobra.Command{
	Use:   "iptree",
	Short: "Longest-prefix-match trees over IPv4 and IPv6 networks",
}

// initConfig reads ENV variables that match the prefix and binds them
// to the persistent flags.
func initConfig() {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			if err := f.Value.Set(v.GetString(f.Name)); err != nil {
				log.Errorf("Bind env %s: %v", f.Name, err)
			}
		}
	})

	initLogger()
}

func initLogger() {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.InfoLevel
	}
	log.SetLevel(ll)
	log.SetFormatter(&log.TextFormatter{DisableColors: false, FullTimestamp: true})
}

// loadNetworks parses networks from args, plus one per line from the
// --file argument when given; blank lines and # comments are skipped.
func loadNetworks(args []string) ([]netaddressing.Network, error) {
	lines := append([]string{}, args...)

	if networksFile != "" {
		f, err := os.Open(networksFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			lines = append(lines, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	networks := make([]netaddressing.Network, 0, len(lines))
	for _, line := range lines {
		n, err := netaddressing.ParseNetwork(line)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", line, err)
		}
		networks = append(networks, n)
	}

	return networks, nil
}

func buildTree(networks []netaddressing.Network) (*netaddressing.Tree[string], error) {
	tree := new(netaddressing.Tree[string])
	for _, n := range networks {
		if !tree.TryAdd(n, n.String()) {
			log.Warnf("Skipping duplicate network %s", n)
		}
	}
	return tree, nil
}

var treeCmd = &cobra.Command{
	Use:   "tree [network]...",
	Short: "Print the text tree of the loaded networks",
	RunE: func(_ *cobra.Command, args []string) error {
		networks, err := loadNetworks(args)
		if err != nil {
			return err
		}

		tree, err := buildTree(networks)
		if err != nil {
			return err
		}
		log.Debugf("Loaded %d networks", tree.Count())

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(tree)
		}

		fmt.Println(tree.ToTextTree(netaddressing.IPv4))
		fmt.Println(tree.ToTextTree(netaddressing.IPv6))
		return nil
	},
}

var matchCmd = &cobra.Command{
	Use:   "match <address> [network]...",
	Short: "List the loaded networks covering an address, least specific first",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		query, err := netaddressing.ParseNetwork(args[0])
		if err != nil {
			return err
		}

		networks, err := loadNetworks(args[1:])
		if err != nil {
			return err
		}

		tree, err := buildTree(networks)
		if err != nil {
			return err
		}

		matches, ok := tree.TryGetMatchesNetwork(query)
		if !ok {
			return fmt.Errorf("no network contains %s", query)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(matches)
		}

		for _, m := range matches {
			fmt.Println(m.Network)
		}
		return nil
	},
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize [network]...",
	Short: "Coalesce sibling networks into their common supernets",
	RunE: func(_ *cobra.Command, args []string) error {
		networks, err := loadNetworks(args)
		if err != nil {
			return err
		}

		summary := netaddressing.Summarize(networks)
		log.Debugf("Summarized %d networks into %d", len(networks), len(summary))

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(summary)
		}

		for _, n := range summary {
			fmt.Println(n)
		}
		return nil
	},
}

// networkInfo is the serializable detail record of the info command.
type networkInfo struct {
	Network        netaddressing.Network `json:"network"`
	Family         string                `json:"family"`
	Mask           string                `json:"mask"`
	Wildcard       string                `json:"wildcard"`
	Broadcast      string                `json:"broadcast"`
	FirstHost      string                `json:"firstHost,omitempty"`
	LastHost       string                `json:"lastHost,omitempty"`
	TotalAddresses string                `json:"totalAddresses"`
	TotalHosts     string                `json:"totalHosts"`
	AddressClass   string                `json:"addressClass,omitempty"`
	Allocation     string                `json:"allocation,omitempty"`
}

var infoCmd = &cobra.Command{
	Use:   "info <network>",
	Short: "Print the derived quantities of a network",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		n, err := netaddressing.ParseNetwork(args[0])
		if err != nil {
			return err
		}

		info := networkInfo{
			Network:        n,
			Family:         n.Family().String(),
			Mask:           n.Mask().String(),
			Wildcard:       n.Wildcard().String(),
			Broadcast:      n.Broadcast().String(),
			TotalAddresses: n.TotalAddresses().String(),
			TotalHosts:     n.TotalHosts().String(),
		}

		if first, err := n.FirstHost(); err == nil {
			info.FirstHost = first.String()
		}
		if last, err := n.LastHost(); err == nil {
			info.LastHost = last.String()
		}
		if class, err := n.AddressClass(); err == nil {
			info.AddressClass = "Class " + class.String()
		}
		if allocation, ok := netaddressing.AllocationOf(n); ok {
			info.Allocation = fmt.Sprintf("%s (%s)", allocation.Name, allocation.Reference)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(info)
		}

		fmt.Printf("Network:         %s\n", info.Network)
		fmt.Printf("Family:          %s\n", info.Family)
		fmt.Printf("Mask:            %s\n", info.Mask)
		fmt.Printf("Wildcard:        %s\n", info.Wildcard)
		fmt.Printf("Broadcast:       %s\n", info.Broadcast)
		if info.FirstHost != "" {
			fmt.Printf("First host:      %s\n", info.FirstHost)
			fmt.Printf("Last host:       %s\n", info.LastHost)
		}
		fmt.Printf("Total addresses: %s\n", info.TotalAddresses)
		fmt.Printf("Total hosts:     %s\n", info.TotalHosts)
		if info.AddressClass != "" {
			fmt.Printf("Address class:   %s\n", info.AddressClass)
		}
		if info.Allocation != "" {
			fmt.Printf("Allocation:      %s\n", info.Allocation)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("iptree %s (built %s)\n", buildVersion, buildDate)
	},
}

func main() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warning, error)")
	rootCmd.PersistentFlags().StringVar(&networksFile, "file", "", "file with one network per line")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of text")

	rootCmd.AddCommand(treeCmd, matchCmd, summarizeCmd, infoCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
