// Package config provides configuration parsing for the bptree tools.
//
// # Configuration File
//
// Configuration is read from a YAML file:
//
//	tree:
//	  order: 4
//	  splitPolicy: promote-median   # or copy-median
//
//	storage:
//	  dataFile: /var/lib/bptree/tree.json
//	  loadOnStart: true
//
//	journal:
//	  enabled: true
//	  path: /var/lib/bptree/bplustree_log.txt
//
//	logging:
//	  level: info      # debug, info, warn, error
//	  format: text     # text, json
//	  output: stderr   # stdout, stderr or a file path
//
// Keys missing from the file keep their DefaultConfig value; unknown keys
// are rejected.
//
// # Environment Variables
//
// ${VAR} and ${VAR:-default} are substituted before parsing:
//
//	storage:
//	  dataFile: ${BPTREE_HOME:-/var/lib/bptree}/tree.json
//
// ApplyEnv additionally overrides single values from BPTREE_TREE_ORDER,
// BPTREE_TREE_SPLIT_POLICY, BPTREE_STORAGE_DATA_FILE, BPTREE_JOURNAL_PATH
// and BPTREE_LOGGING_LEVEL.
//
// # Validation
//
//	cfg, err := config.LoadConfig("bptree.yaml")
//	if err != nil {
//	    return err
//	}
//	if errs := config.ValidateConfig(cfg); len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
