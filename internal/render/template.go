package render

const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.AssetsHost}}/echarts@5/dist/echarts.min.js"></script>
{{- if .WordCloud}}
<script src="{{.AssetsHost}}/echarts-wordcloud@2/dist/echarts-wordcloud.min.js"></script>
{{- end}}
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, "Microsoft YaHei", sans-serif; }
</style>
</head>
<body>
<div id="chart" style="width: {{.Width}}; height: {{.Height}};"></div>
<script>
var chart = echarts.init(document.getElementById("chart"), null, { renderer: "canvas" });
chart.setOption({{.Option}});
</script>
</body>
</html>`
