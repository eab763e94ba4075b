package proc

import (
	"strconv"

	"github.com/valyala/fasttemplate"
)

// Worker command lines. Placeholders use {{name}} syntax.
var (
	cmdStatus   = "status"
	cmdClientID = "_get_client_id"

	tmplComponentStart = newTemplate("component start {{name}} {{core}} {{type}}")
	tmplComponentStop  = newTemplate("component stop {{name}}")
	tmplPortAdd        = newTemplate("port add {{port}} {{dir}} {{name}}")
	tmplPortAddVlan    = newTemplate("port add {{port}} {{dir}} {{name}} {{op}} {{vid}} {{pcp}}")
	tmplPortAddTagOp   = newTemplate("port add {{port}} {{dir}} {{name}} {{op}}")
	tmplPortDel        = newTemplate("port del {{port}} {{dir}} {{name}}")
	tmplClassifierMAC  = newTemplate("classifier_table {{action}} mac {{mac}} {{port}}")
	tmplClassifierVLAN = newTemplate("classifier_table {{action}} vlan {{vid}} {{mac}} {{port}}")

	tmplNFVPort      = newTemplate("{{action}} {{kind}} {{index}}")
	tmplNFVPatch     = newTemplate("patch {{src}} {{dst}}")
	cmdNFVForward    = "forward"
	cmdNFVStop       = "stop"
	cmdNFVPatchReset = "patch reset"

	cmdPrimaryClear = "clear"
)

func newTemplate(t string) *fasttemplate.Template {
	return fasttemplate.New(t, "{{", "}}")
}

// render substitutes key/value pairs into t.
func render(t *fasttemplate.Template, kv ...string) string {
	m := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return t.ExecuteString(m)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
