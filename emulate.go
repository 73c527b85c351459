package lazyframe

import (
	"github.com/go-sif/lazyframe/errors"
	"github.com/go-sif/lazyframe/graph"
	"github.com/go-sif/lazyframe/internal/util"
	"github.com/go-sif/lazyframe/partition"
)

// extractMeta replaces every Collection within x by its meta, searching lists and
// maps recursively. With nonEmpty set, partition metas are replaced by their one-row proxies.
func extractMeta(x interface{}, nonEmpty bool) interface{} {
	switch tx := x.(type) {
	case Collection:
		meta := tx.Meta()
		if p, ok := meta.(partition.Partition); ok && nonEmpty {
			return p.NonEmpty()
		}
		return meta
	case []interface{}:
		res := make([]interface{}, len(tx))
		for i, e := range tx {
			res[i] = extractMeta(e, nonEmpty)
		}
		return res
	case map[string]interface{}:
		if tx == nil {
			return tx
		}
		res := make(map[string]interface{}, len(tx))
		for k, v := range tx {
			res[k] = extractMeta(v, nonEmpty)
		}
		return res
	}
	return x
}

// emulate infers the meta of fn's result by applying it to the metas of its
// operands. Failures, including panics, are attributed to funcName.
func emulate(funcName string, fn graph.Func, args []interface{}, kwargs map[string]interface{}, nonEmpty bool) (interface{}, error) {
	safeFn := util.SafePartitionFunc(funcName, fn)
	metaArgs := extractMeta(args, nonEmpty).([]interface{})
	var metaKwargs map[string]interface{}
	if kwargs != nil {
		metaKwargs = extractMeta(kwargs, nonEmpty).(map[string]interface{})
	}
	res, err := safeFn(metaArgs, metaKwargs)
	if err != nil {
		return nil, errors.EmulationError{FuncName: funcName, Err: err}
	}
	return partition.MakeMeta(res), nil
}
